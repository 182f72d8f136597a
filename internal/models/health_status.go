package models

import "time"

// HealthStatus is a single reading taken during transport. Rows are never
// updated once written.
type HealthStatus struct {
	HealthStatusID uint      `gorm:"primaryKey"`
	OrderDetailsID uint      `gorm:"not null;index"`
	Date           time.Time `gorm:"not null;index"`
	Status         string    `gorm:"size:50;not null"`
	Description    string    `gorm:"type:text;not null"`
	Temperature    float64
	OxygenLevel    float64
	PhLevel        float64

	OrderDetails *OrderDetails `gorm:"constraint:OnDelete:CASCADE"`
}

type HealthStatusDTO struct {
	HealthStatusID uint      `json:"healthStatusId"`
	OrderDetailsID uint      `json:"orderDetailsId"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`
	Description    string    `json:"description"`
	Temperature    float64   `json:"temperature"`
	OxygenLevel    float64   `json:"oxygenLevel"`
	PhLevel        float64   `json:"phLevel"`
}

type HealthStatusInput struct {
	OrderDetailsID uint       `json:"orderDetailsId" binding:"required"`
	Date           *time.Time `json:"date"`
	Status         string     `json:"status" binding:"required"`
	Description    string     `json:"description" binding:"required"`
	Temperature    float64    `json:"temperature"`
	OxygenLevel    float64    `json:"oxygenLevel" binding:"gte=0"`
	PhLevel        float64    `json:"phLevel" binding:"gte=0,lte=14"`
}

func (h HealthStatus) ToDTO() HealthStatusDTO {
	return HealthStatusDTO{
		HealthStatusID: h.HealthStatusID,
		OrderDetailsID: h.OrderDetailsID,
		Date:           h.Date,
		Status:         h.Status,
		Description:    h.Description,
		Temperature:    h.Temperature,
		OxygenLevel:    h.OxygenLevel,
		PhLevel:        h.PhLevel,
	}
}

// ToModel builds a new reading; now is used when Date is omitted.
func (in HealthStatusInput) ToModel(now time.Time) HealthStatus {
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	return HealthStatus{
		OrderDetailsID: in.OrderDetailsID,
		Date:           date,
		Status:         in.Status,
		Description:    in.Description,
		Temperature:    in.Temperature,
		OxygenLevel:    in.OxygenLevel,
		PhLevel:        in.PhLevel,
	}
}

// FishLatestStatus is one row of the per-fish latest-status view.
type FishLatestStatus struct {
	OrderDetailsID uint             `json:"orderDetailsId"`
	FishProfileID  uint             `json:"fishProfileId"`
	FishName       string           `json:"fishName"`
	Latest         *HealthStatusDTO `json:"latest"`
	ReadingCount   int              `json:"readingCount"`
}

// LatestByFish reduces each order detail's history to its newest reading.
// Ties on Date go to the higher id, i.e. the later insert.
func LatestByFish(details []OrderDetails) []FishLatestStatus {
	out := make([]FishLatestStatus, 0, len(details))
	for _, d := range details {
		row := FishLatestStatus{
			OrderDetailsID: d.OrderDetailsID,
			FishProfileID:  d.FishProfileID,
			ReadingCount:   len(d.HealthStatus),
		}
		if d.FishProfile != nil {
			row.FishName = d.FishProfile.Name
		}
		var latest *HealthStatus
		for i := range d.HealthStatus {
			hs := &d.HealthStatus[i]
			if latest == nil || hs.Date.After(latest.Date) ||
				(hs.Date.Equal(latest.Date) && hs.HealthStatusID > latest.HealthStatusID) {
				latest = hs
			}
		}
		if latest != nil {
			dto := latest.ToDTO()
			row.Latest = &dto
		}
		out = append(out, row)
	}
	return out
}
