package handlers

import (
	"doctorsportal/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and the gates routes need.
type HandlerBundle struct {
	Tokens middleware.TokenValidator
	Admins middleware.AdminChecker

	Greeting gin.HandlerFunc
	Health   gin.HandlerFunc

	// Catalog, doctors and reviews
	ListServices  gin.HandlerFunc
	CreateService gin.HandlerFunc
	DeleteService gin.HandlerFunc
	ListDoctors   gin.HandlerFunc
	AddDoctor     gin.HandlerFunc
	DeleteDoctor  gin.HandlerFunc
	ListReviews   gin.HandlerFunc
	AddReview     gin.HandlerFunc

	// Booking endpoints
	GetAvailable  gin.HandlerFunc
	CreateBooking gin.HandlerFunc
	ListBookings  gin.HandlerFunc
	GetBooking    gin.HandlerFunc

	// Payment endpoints
	RecordPayment       gin.HandlerFunc
	CreatePaymentIntent gin.HandlerFunc

	// User endpoints
	GetAllUsers   gin.HandlerFunc
	DeleteUser    gin.HandlerFunc
	CheckAdmin    gin.HandlerFunc
	MakeAdmin     gin.HandlerFunc
	UpsertProfile gin.HandlerFunc
}

// NewHandlerBundle wires the handlers into a bundle.
func NewHandlerBundle(tokens middleware.TokenValidator, admins middleware.AdminChecker,
	clinicH *ClinicHandler, bookingH *BookingHandler, paymentH *PaymentHandler, userH *UserHandler, healthH *HealthHandler) *HandlerBundle {
	return &HandlerBundle{
		Tokens: tokens,
		Admins: admins,

		Greeting: clinicH.Greeting,
		Health:   healthH.Health,

		ListServices:  clinicH.ListServices,
		CreateService: clinicH.CreateService,
		DeleteService: clinicH.DeleteService,
		ListDoctors:   clinicH.ListDoctors,
		AddDoctor:     clinicH.AddDoctor,
		DeleteDoctor:  clinicH.DeleteDoctor,
		ListReviews:   clinicH.ListReviews,
		AddReview:     clinicH.AddReview,

		GetAvailable:  bookingH.GetAvailable,
		CreateBooking: bookingH.CreateBooking,
		ListBookings:  bookingH.ListBookings,
		GetBooking:    bookingH.GetBooking,

		RecordPayment:       paymentH.RecordPayment,
		CreatePaymentIntent: paymentH.CreatePaymentIntent,

		GetAllUsers:   userH.GetAllUsers,
		DeleteUser:    userH.DeleteUser,
		CheckAdmin:    userH.CheckAdmin,
		MakeAdmin:     userH.MakeAdmin,
		UpsertProfile: userH.UpsertProfile,
	}
}
