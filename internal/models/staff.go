package models

// Staff covers sales, health-care and delivery employees alike.
type Staff struct {
	StaffID     uint   `gorm:"primaryKey"`
	StaffName   string `gorm:"size:100;not null;index"`
	Role        string `gorm:"size:50"` // free text job title, e.g. "Delivery"
	Email       string `gorm:"size:100"`
	PhoneNumber string `gorm:"size:20"`
	Gender      string `gorm:"size:20"`
	Age         int
}

type StaffDTO struct {
	StaffID     uint   `json:"staffId"`
	StaffName   string `json:"staffName"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Gender      string `json:"gender"`
	Age         int    `json:"age"`
}

type StaffInput struct {
	StaffName   string `json:"staffName" binding:"required"`
	Role        string `json:"role"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
	Gender      string `json:"gender"`
	Age         int    `json:"age" binding:"gte=0,lte=150"`
}

func (s Staff) ToDTO() StaffDTO {
	return StaffDTO{
		StaffID:     s.StaffID,
		StaffName:   s.StaffName,
		Role:        s.Role,
		Email:       s.Email,
		PhoneNumber: s.PhoneNumber,
		Gender:      s.Gender,
		Age:         s.Age,
	}
}

func (in StaffInput) ApplyTo(s *Staff) {
	s.StaffName = in.StaffName
	s.Role = in.Role
	s.Email = in.Email
	s.PhoneNumber = in.PhoneNumber
	s.Gender = in.Gender
	s.Age = in.Age
}
