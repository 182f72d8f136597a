package models

import "time"

// Feedback is the single rating a customer leaves for a delivered order.
type Feedback struct {
	FeedbackID uint   `gorm:"primaryKey"`
	OrderID    uint   `gorm:"not null;uniqueIndex"`
	CustomerID uint   `gorm:"not null;index"`
	Rating     int    `gorm:"not null"`
	Comment    string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Order    *Order    `gorm:"constraint:OnDelete:CASCADE"`
	Customer *Customer `gorm:"constraint:OnDelete:CASCADE"`
}

type FeedbackDTO struct {
	FeedbackID uint      `json:"feedbackId"`
	OrderID    uint      `json:"orderId"`
	CustomerID uint      `json:"customerId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type FeedbackInput struct {
	OrderID    uint   `json:"orderId" binding:"required"`
	CustomerID uint   `json:"customerId" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

func (f Feedback) ToDTO() FeedbackDTO {
	return FeedbackDTO{
		FeedbackID: f.FeedbackID,
		OrderID:    f.OrderID,
		CustomerID: f.CustomerID,
		Rating:     f.Rating,
		Comment:    f.Comment,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

func (in FeedbackInput) ToModel() Feedback {
	return Feedback{
		OrderID:    in.OrderID,
		CustomerID: in.CustomerID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}
}
