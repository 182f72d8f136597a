package models

// Customer is a person who ships koi with us.
type Customer struct {
	CustomerID   uint   `gorm:"primaryKey"`
	CustomerName string `gorm:"size:100;not null"`
	Address      string `gorm:"size:255"`
	Age          int
	Email        string `gorm:"size:100"`
	Gender       string `gorm:"size:20"`
	PhoneNumber  string `gorm:"size:20"`
}

type CustomerDTO struct {
	CustomerID   uint   `json:"customerId"`
	CustomerName string `json:"customerName"`
	Address      string `json:"address"`
	Age          int    `json:"age"`
	Email        string `json:"email"`
	Gender       string `json:"gender"`
	PhoneNumber  string `json:"phoneNumber"`
}

// CustomerInput is the body of both create and update.
type CustomerInput struct {
	CustomerName string `json:"customerName" binding:"required"`
	Address      string `json:"address"`
	Age          int    `json:"age" binding:"gte=0,lte=150"`
	Email        string `json:"email" binding:"omitempty,email"`
	Gender       string `json:"gender"`
	PhoneNumber  string `json:"phoneNumber"`
}

func (c Customer) ToDTO() CustomerDTO {
	return CustomerDTO{
		CustomerID:   c.CustomerID,
		CustomerName: c.CustomerName,
		Address:      c.Address,
		Age:          c.Age,
		Email:        c.Email,
		Gender:       c.Gender,
		PhoneNumber:  c.PhoneNumber,
	}
}

// ApplyTo overwrites every mutable field of c.
func (in CustomerInput) ApplyTo(c *Customer) {
	c.CustomerName = in.CustomerName
	c.Address = in.Address
	c.Age = in.Age
	c.Email = in.Email
	c.Gender = in.Gender
	c.PhoneNumber = in.PhoneNumber
}
