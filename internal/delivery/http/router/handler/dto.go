package handler

import (
	"time"

	"lodging/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerResponse is the public view of a customer. The password hash never leaves the service.
type CustomerResponse struct {
	ID             uuid.UUID  `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	Age            *int       `json:"age,omitempty"`
	PassportNumber *string    `json:"passportNumber,omitempty"`
	PassportExpiry *time.Time `json:"passportExpiry,omitempty"`
	Phone          *string    `json:"phone,omitempty"`
	Country        string     `json:"country,omitempty"`
	Role           string     `json:"role"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func toCustomerResponse(c *entity.Customer, now time.Time) *CustomerResponse {
	resp := &CustomerResponse{
		ID:             c.ID,
		Username:       c.Username,
		Email:          c.Email,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		PassportNumber: c.PassportNumber,
		PassportExpiry: c.PassportExpiry,
		Phone:          c.Phone,
		Country:        c.Country,
		Role:           c.Role.String(),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if !c.DateOfBirth.IsZero() {
		dob := c.DateOfBirth
		age := c.Age(now)
		resp.DateOfBirth = &dob
		resp.Age = &age
	}

	return resp
}

func toCustomerResponses(customers []*entity.Customer, now time.Time) []*CustomerResponse {
	out := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c, now))
	}

	return out
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AuthToken string           `json:"authToken"`
	Type      string           `json:"type"`
	ExpiresIn int64            `json:"expiresIn"`
	Customer  LoginCustomerRef `json:"customer"`
}

// LoginCustomerRef is the minimal profile returned with a token.
type LoginCustomerRef struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

// LodgingResponse is the public view of a lodging.
type LodgingResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	Country        string    `json:"country"`
	Price          float64   `json:"price"`
	StarRating     int       `json:"starRating"`
	CustomerRating float64   `json:"customerRating"`
	Category       string    `json:"category"`
	AvailableFrom  time.Time `json:"availableFrom"`
	AvailableTo    time.Time `json:"availableTo"`
	MaxOccupancy   int       `json:"maxOccupancy"`
	CheckInTime    string    `json:"checkInTime"`
	CheckOutTime   string    `json:"checkOutTime"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toLodgingResponse(l *entity.Lodging) *LodgingResponse {
	return &LodgingResponse{
		ID:             l.ID,
		Name:           l.Name,
		Description:    l.Description,
		Address:        l.Address,
		City:           l.City,
		Country:        l.Country,
		Price:          l.Price,
		StarRating:     l.StarRating,
		CustomerRating: l.CustomerRating,
		Category:       l.Category.String(),
		AvailableFrom:  l.AvailableFrom,
		AvailableTo:    l.AvailableTo,
		MaxOccupancy:   l.MaxOccupancy,
		CheckInTime:    l.CheckInTime,
		CheckOutTime:   l.CheckOutTime,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

// ReservationResponse is the public view of a reservation.
type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	LodgingID  uuid.UUID `json:"lodgingId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Nights     int       `json:"nights"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toReservationResponse(r *entity.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		LodgingID:  r.LodgingID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Nights:     r.Nights(),
		CreatedAt:  r.CreatedAt,
	}
}

func toReservationResponses(reservations []*entity.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, toReservationResponse(r))
	}

	return out
}
