package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// BOOK DTOs
// ========================================

// BookRequest - body cho create và update.
// Tất cả fields là pointers để phân biệt "absent" với zero value:
// price 0 và title "" đều hợp lệ, chỉ field bị thiếu mới bị reject.
type BookRequest struct {
	Title  *string  `json:"title"`
	Author *string  `json:"author"`
	Price  *float64 `json:"price"`
}

// Validate kiểm tra structural requirements: mọi field phải có mặt.
// Business constraints (price >= 0, non-empty strings) cố ý không enforce.
func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NotNil.Error("title is required"),
		),
		validation.Field(&r.Author,
			validation.NotNil.Error("author is required"),
		),
		validation.Field(&r.Price,
			validation.NotNil.Error("price is required"),
		),
	)
}

// Model chuyển DTO đã validate thành entity.
// Chỉ gọi sau khi Validate() đã pass - dereference nil sẽ panic.
func (r BookRequest) Model() Book {
	return Book{
		Title:  *r.Title,
		Author: *r.Author,
		Price:  *r.Price,
	}
}
