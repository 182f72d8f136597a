package models

// Transport groups the three staff members responsible for one run.
type Transport struct {
	TransportID       uint            `gorm:"primaryKey"`
	Status            TransportStatus `gorm:"size:20;not null"`
	StaffID           uint            `gorm:"not null"`
	HealthCareStaffID uint            `gorm:"not null"`
	DeliveryStaffID   uint            `gorm:"not null"`

	Staff           *Staff `gorm:"constraint:OnDelete:RESTRICT"`
	HealthCareStaff *Staff `gorm:"foreignKey:HealthCareStaffID;constraint:OnDelete:RESTRICT"`
	DeliveryStaff   *Staff `gorm:"foreignKey:DeliveryStaffID;constraint:OnDelete:RESTRICT"`
}

type TransportDTO struct {
	TransportID       uint            `json:"transportId"`
	Status            TransportStatus `json:"status"`
	StaffID           uint            `json:"staffId"`
	HealthCareStaffID uint            `json:"healthCareStaffId"`
	DeliveryStaffID   uint            `json:"deliveryStaffId"`
}

type TransportInput struct {
	Status            TransportStatus `json:"status" binding:"required"`
	StaffID           uint            `json:"staffId" binding:"required"`
	HealthCareStaffID uint            `json:"healthCareStaffId" binding:"required"`
	DeliveryStaffID   uint            `json:"deliveryStaffId" binding:"required"`
}

func (t Transport) ToDTO() TransportDTO {
	return TransportDTO{
		TransportID:       t.TransportID,
		Status:            t.Status,
		StaffID:           t.StaffID,
		HealthCareStaffID: t.HealthCareStaffID,
		DeliveryStaffID:   t.DeliveryStaffID,
	}
}

func (in TransportInput) ApplyTo(t *Transport) {
	t.Status = in.Status
	t.StaffID = in.StaffID
	t.HealthCareStaffID = in.HealthCareStaffID
	t.DeliveryStaffID = in.DeliveryStaffID
}

// StaffIDs lists every staff reference so callers can check they exist.
func (in TransportInput) StaffIDs() []uint {
	return []uint{in.StaffID, in.HealthCareStaffID, in.DeliveryStaffID}
}
