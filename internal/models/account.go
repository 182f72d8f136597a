package models

import (
	"time"

	"gorm.io/gorm"
)

// Account is a login. A customer account points at its Customer row, a
// staff account at its Staff row; admins may have neither.
type Account struct {
	AccountID    uint   `gorm:"primaryKey"`
	UserName     string `gorm:"size:100;not null;uniqueIndex"`
	Email        string `gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"size:20;not null"`
	FCMToken     string `gorm:"size:255"`
	CustomerID   *uint  `gorm:"uniqueIndex"`
	StaffID      *uint  `gorm:"uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Customer *Customer `gorm:"constraint:OnDelete:SET NULL"`
	Staff    *Staff    `gorm:"constraint:OnDelete:SET NULL"`
}

type AccountDTO struct {
	AccountID uint         `json:"accountId"`
	UserName  string       `json:"userName"`
	Email     string       `json:"email"`
	Role      Role         `json:"role"`
	Customer  *CustomerDTO `json:"customer,omitempty"`
	Staff     *StaffDTO    `json:"staff,omitempty"`
}

func (a Account) ToDTO() AccountDTO {
	dto := AccountDTO{
		AccountID: a.AccountID,
		UserName:  a.UserName,
		Email:     a.Email,
		Role:      a.Role,
	}
	if a.Customer != nil {
		c := a.Customer.ToDTO()
		dto.Customer = &c
	}
	if a.Staff != nil {
		s := a.Staff.ToDTO()
		dto.Staff = &s
	}
	return dto
}

// RegisterInput signs up a customer: the account and its Customer row.
type RegisterInput struct {
	UserName     string `json:"userName" binding:"required,min=3"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	CustomerName string `json:"customerName" binding:"required"`
	Address      string `json:"address"`
	Age          int    `json:"age" binding:"gte=0,lte=150"`
	Gender       string `json:"gender"`
	PhoneNumber  string `json:"phoneNumber"`
}

type LoginInput struct {
	UsernameOrEmail string `json:"usernameOrEmail" binding:"required"`
	Password        string `json:"password" binding:"required"`
	FCMToken        string `json:"fcmToken"`
}

type GoogleLoginInput struct {
	AccessToken string `json:"accessToken" binding:"required"`
	FCMToken    string `json:"fcmToken"`
}
