package models

import "time"

type Order struct {
	OrderID              uint   `gorm:"primaryKey"`
	Code                 string `gorm:"size:20;not null;uniqueIndex"`
	CustomerID           uint   `gorm:"not null;index"`
	TransportID          *uint  `gorm:"index"` // NULL until a transport is assigned
	SenderName           string `gorm:"size:100"`
	SenderAddress        string `gorm:"size:255"`
	SenderPhoneNumber    string `gorm:"size:20"`
	RecipientName        string `gorm:"size:100"`
	RecipientAddress     string `gorm:"size:255"`
	RecipientEmail       string `gorm:"size:100"`
	RecipientPhoneNumber string `gorm:"size:20"`
	Quantity             int
	TotalWeight          float64
	TotalCost            float64
	PaymentMethod        string        `gorm:"size:50"`
	PaymentStatus        PaymentStatus `gorm:"size:20;not null"`
	DeliveryStatus       OrderStatus   `gorm:"size:20;not null;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Customer     *Customer      `gorm:"constraint:OnDelete:RESTRICT"`
	Transport    *Transport     `gorm:"constraint:OnDelete:SET NULL"`
	OrderDetails []OrderDetails `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderDTO struct {
	OrderID              uint          `json:"orderId"`
	Code                 string        `json:"code"`
	CustomerID           uint          `json:"customerId"`
	TransportID          *uint         `json:"transportId"`
	SenderName           string        `json:"senderName"`
	SenderAddress        string        `json:"senderAddress"`
	SenderPhoneNumber    string        `json:"senderPhoneNumber"`
	RecipientName        string        `json:"recipientName"`
	RecipientAddress     string        `json:"recipientAddress"`
	RecipientEmail       string        `json:"recipientEmail"`
	RecipientPhoneNumber string        `json:"recipientPhoneNumber"`
	Quantity             int           `json:"quantity"`
	TotalWeight          float64       `json:"totalWeight"`
	TotalCost            float64       `json:"totalCost"`
	PaymentMethod        string        `json:"paymentMethod"`
	PaymentStatus        PaymentStatus `json:"paymentStatus"`
	DeliveryStatus       OrderStatus   `json:"deliveryStatus"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

// OrderInput is the body of create and update. Empty statuses mean
// PENDING on create; on update every field, statuses included, is
// overwritten.
type OrderInput struct {
	CustomerID           uint          `json:"customerId" binding:"required"`
	TransportID          *uint         `json:"transportId"`
	SenderName           string        `json:"senderName" binding:"required"`
	SenderAddress        string        `json:"senderAddress" binding:"required"`
	SenderPhoneNumber    string        `json:"senderPhoneNumber" binding:"required"`
	RecipientName        string        `json:"recipientName" binding:"required"`
	RecipientAddress     string        `json:"recipientAddress" binding:"required"`
	RecipientEmail       string        `json:"recipientEmail" binding:"omitempty,email"`
	RecipientPhoneNumber string        `json:"recipientPhoneNumber" binding:"required"`
	Quantity             int           `json:"quantity" binding:"gte=0"`
	TotalWeight          float64       `json:"totalWeight" binding:"gte=0"`
	TotalCost            float64       `json:"totalCost" binding:"gte=0"`
	PaymentMethod        string        `json:"paymentMethod"`
	PaymentStatus        PaymentStatus `json:"paymentStatus"`
	DeliveryStatus       OrderStatus   `json:"deliveryStatus"`
}

func (o Order) ToDTO() OrderDTO {
	return OrderDTO{
		OrderID:              o.OrderID,
		Code:                 o.Code,
		CustomerID:           o.CustomerID,
		TransportID:          o.TransportID,
		SenderName:           o.SenderName,
		SenderAddress:        o.SenderAddress,
		SenderPhoneNumber:    o.SenderPhoneNumber,
		RecipientName:        o.RecipientName,
		RecipientAddress:     o.RecipientAddress,
		RecipientEmail:       o.RecipientEmail,
		RecipientPhoneNumber: o.RecipientPhoneNumber,
		Quantity:             o.Quantity,
		TotalWeight:          o.TotalWeight,
		TotalCost:            o.TotalCost,
		PaymentMethod:        o.PaymentMethod,
		PaymentStatus:        o.PaymentStatus,
		DeliveryStatus:       o.DeliveryStatus,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

func (in OrderInput) ApplyTo(o *Order) {
	o.CustomerID = in.CustomerID
	o.TransportID = in.TransportID
	o.SenderName = in.SenderName
	o.SenderAddress = in.SenderAddress
	o.SenderPhoneNumber = in.SenderPhoneNumber
	o.RecipientName = in.RecipientName
	o.RecipientAddress = in.RecipientAddress
	o.RecipientEmail = in.RecipientEmail
	o.RecipientPhoneNumber = in.RecipientPhoneNumber
	o.Quantity = in.Quantity
	o.TotalWeight = in.TotalWeight
	o.TotalCost = in.TotalCost
	o.PaymentMethod = in.PaymentMethod
	o.PaymentStatus = in.PaymentStatus
	o.DeliveryStatus = in.DeliveryStatus
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentPending
	}
	if o.DeliveryStatus == "" {
		o.DeliveryStatus = OrderPending
	}
}

// OrderDetails ties one fish profile to an order and owns its health history.
type OrderDetails struct {
	OrderDetailsID uint    `gorm:"primaryKey"`
	OrderID        uint    `gorm:"not null;index"`
	FishProfileID  uint    `gorm:"not null;index"`
	Price          float64 `gorm:"not null;default:0"`

	Order        *Order         `gorm:"constraint:OnDelete:CASCADE"`
	FishProfile  *FishProfile   `gorm:"constraint:OnDelete:RESTRICT"`
	HealthStatus []HealthStatus `gorm:"foreignKey:OrderDetailsID;constraint:OnDelete:CASCADE"`
}

type OrderDetailsDTO struct {
	OrderDetailsID uint              `json:"orderDetailsId"`
	OrderID        uint              `json:"orderId"`
	FishProfileID  uint              `json:"fishProfileId"`
	Price          float64           `json:"price"`
	FishProfile    *FishProfileDTO   `json:"fishProfile,omitempty"`
	HealthStatus   []HealthStatusDTO `json:"healthStatus"`
}

type OrderDetailsInput struct {
	OrderID       uint    `json:"orderId" binding:"required"`
	FishProfileID uint    `json:"fishProfileId" binding:"required"`
	Price         float64 `json:"price" binding:"gte=0"`
}

func (d OrderDetails) ToDTO() OrderDetailsDTO {
	dto := OrderDetailsDTO{
		OrderDetailsID: d.OrderDetailsID,
		OrderID:        d.OrderID,
		FishProfileID:  d.FishProfileID,
		Price:          d.Price,
		HealthStatus:   make([]HealthStatusDTO, 0, len(d.HealthStatus)),
	}
	if d.FishProfile != nil {
		fp := d.FishProfile.ToDTO()
		dto.FishProfile = &fp
	}
	for _, hs := range d.HealthStatus {
		dto.HealthStatus = append(dto.HealthStatus, hs.ToDTO())
	}
	return dto
}

func (in OrderDetailsInput) ApplyTo(d *OrderDetails) {
	d.OrderID = in.OrderID
	d.FishProfileID = in.FishProfileID
	d.Price = in.Price
	d.FishProfile = nil
}
