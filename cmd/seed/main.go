package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"guestnest/internal/database"
	"guestnest/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "guestnest.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Property{},
		&domain.EquipmentInstruction{},
		&domain.HouseRule{},
		&domain.Booking{},
		&domain.Partner{},
		&domain.Service{},
		&domain.Order{},
		&domain.ChatMessage{},
		&domain.Notification{},
		&domain.Issue{},
		&domain.Feedback{},
		&domain.MapLocation{},
		&domain.EmergencyContact{},
		&domain.SavedLocation{},
		&domain.Itinerary{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	for _, table := range []string{
		"itineraries", "saved_locations", "emergency_contacts", "map_locations",
		"guest_feedback", "issues", "notifications", "chat_messages", "orders",
		"services", "partners", "bookings", "house_rules",
		"equipment_instructions", "properties", "users",
	} {
		db.Exec("DELETE FROM " + table)
	}

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@guestnest.io",
		PasswordHash: string(adminHash),
		FirstName:    "Admin",
		LastName:     "User",
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)

	hostHash, _ := bcrypt.GenerateFromPassword([]byte("host123"), bcrypt.DefaultCost)
	host := domain.User{
		Email:        "maria@seasidevillas.com",
		PasswordHash: string(hostHash),
		FirstName:    "Maria",
		LastName:     "Santos",
		Phone:        "+351 912 345 678",
		Role:         domain.RoleHost,
	}
	db.Create(&host)

	guests := []domain.User{}
	guestNames := [][2]string{{"John", "Walker"}, {"Emma", "Lindqvist"}, {"Lukas", "Berger"}}
	for i, name := range guestNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
		guest := domain.User{
			Email:        fmt.Sprintf("guest%d@example.com", i+1),
			PasswordHash: string(hash),
			FirstName:    name[0],
			LastName:     name[1],
			Role:         domain.RoleGuest,
		}
		db.Create(&guest)
		guests = append(guests, guest)
	}

	// ================== PROPERTIES ==================
	log.Println("Creating properties...")
	lat, lon := 37.0179, -7.9304
	villa := domain.Property{
		HostID:      host.ID,
		Name:        "Casa do Mar",
		Address:     "Rua da Praia 12, Faro",
		Description: "Beachfront villa with a private pool, five minutes from the old town.",
		Latitude:    &lat,
		Longitude:   &lon,
	}
	db.Create(&villa)

	apartment := domain.Property{
		HostID:      host.ID,
		Name:        "Old Town Loft",
		Address:     "Largo da Sé 3, Faro",
		Description: "Bright loft overlooking the cathedral square.",
	}
	db.Create(&apartment)

	for _, e := range []domain.EquipmentInstruction{
		{PropertyID: villa.ID, EquipmentName: "Air conditioning", Instructions: "Remote on the living room shelf. Keep doors closed while running."},
		{PropertyID: villa.ID, EquipmentName: "Pool heater", Instructions: "Switch in the garage, left panel. Allow 4 hours to warm up."},
		{PropertyID: villa.ID, EquipmentName: "Washing machine", Instructions: "Detergent drawer: left compartment only. Eco program takes 2h40m."},
	} {
		db.Create(&e)
	}

	for _, r := range []domain.HouseRule{
		{PropertyID: villa.ID, RuleText: "No smoking indoors"},
		{PropertyID: villa.ID, RuleText: "Quiet hours after 22:00"},
		{PropertyID: villa.ID, RuleText: "Check-out by 11:00"},
	} {
		db.Create(&r)
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	today := time.Now().Truncate(24 * time.Hour)
	activeBooking := domain.Booking{
		PropertyID:   villa.ID,
		GuestID:      guests[0].ID,
		CheckInDate:  today.AddDate(0, 0, -3),
		CheckOutDate: today.AddDate(0, 0, 4),
		Status:       domain.BookingActive,
	}
	db.Create(&activeBooking)

	db.Create(&domain.Booking{
		PropertyID:   apartment.ID,
		GuestID:      guests[1].ID,
		CheckInDate:  today.AddDate(0, 0, 14),
		CheckOutDate: today.AddDate(0, 0, 21),
		Status:       domain.BookingUpcoming,
	})

	db.Create(&domain.Booking{
		PropertyID:   villa.ID,
		GuestID:      guests[2].ID,
		CheckInDate:  today.AddDate(0, -2, 0),
		CheckOutDate: today.AddDate(0, -2, 7),
		Status:       domain.BookingCompleted,
	})

	// ================== PARTNERS & SERVICES ==================
	log.Println("Creating partners and services...")
	partners := []domain.Partner{
		{Name: "Algarve Eats", ServiceType: domain.ServiceFoodDelivery, Phone: "+351 289 000 111", CommissionPercentage: 12, IsActive: true},
		{Name: "Faro Rides", ServiceType: domain.ServiceTaxi, Phone: "+351 289 000 222", CommissionFixed: 2.5, IsActive: true},
		{Name: "Ria Formosa Tours", ServiceType: domain.ServiceExcursion, Phone: "+351 289 000 333", CommissionPercentage: 15, IsActive: true},
		{Name: "SparkleClean", ServiceType: domain.ServiceCleaning, CommissionFixed: 8, IsActive: true},
	}
	for i := range partners {
		db.Create(&partners[i])
	}

	price1, price2, price3 := 35.0, 60.0, 45.0
	services := []domain.Service{
		{PartnerID: &partners[0].ID, Name: "Dinner for two", Type: domain.ServiceFoodDelivery, Price: &price1, IsAvailable: true},
		{PartnerID: &partners[2].ID, Name: "Lagoon boat trip", Type: domain.ServiceExcursion, Price: &price2, IsAvailable: true},
		{PartnerID: &partners[3].ID, Name: "Mid-stay cleaning", Type: domain.ServiceCleaning, Price: &price3, IsAvailable: true},
		{PartnerID: &partners[1].ID, Name: "Airport transfer", Type: domain.ServiceTaxi, IsAvailable: true},
	}
	for i := range services {
		db.Create(&services[i])
	}

	// ================== ORDERS ==================
	log.Println("Creating orders...")
	completedAt := today.AddDate(0, 0, -1)
	orders := []domain.Order{
		{
			GuestID: guests[0].ID, PropertyID: villa.ID,
			ServiceID: &services[0].ID, PartnerID: &partners[0].ID,
			ServiceType: domain.ServiceFoodDelivery, Price: &price1,
			CommissionPercentage: 12, CommissionAmount: 4.2,
			OrderDetails: map[string]any{"delivery_time": "19:30", "notes": "no olives"},
			Status:       domain.OrderCompleted, CompletedAt: &completedAt,
		},
		{
			GuestID: guests[0].ID, PropertyID: villa.ID,
			PartnerID:   &partners[1].ID,
			ServiceType: domain.ServiceTaxi,
			CommissionAmount: 2.5,
			OrderDetails: map[string]any{"pickup": "Casa do Mar", "destination": "Faro Airport"},
			Status:       domain.OrderConfirmed,
		},
		{
			GuestID: guests[0].ID, PropertyID: villa.ID,
			ServiceID: &services[1].ID, PartnerID: &partners[2].ID,
			ServiceType: domain.ServiceExcursion, Price: &price2,
			CommissionPercentage: 15, CommissionAmount: 9,
			Status: domain.OrderPending,
		},
	}
	for i := range orders {
		db.Create(&orders[i])
	}

	// ================== CHAT ==================
	log.Println("Creating chat messages...")
	db.Create(&domain.ChatMessage{
		BookingID: activeBooking.ID, SenderID: guests[0].ID, ReceiverID: host.ID,
		Message: "Hi Maria, how do we turn on the pool heater?",
		IsRead:  true,
	})
	db.Create(&domain.ChatMessage{
		BookingID: activeBooking.ID, SenderID: host.ID, ReceiverID: guests[0].ID,
		Message: "Hello! The switch is in the garage, left panel. It takes a few hours to warm up.",
	})

	// ================== MAP & EMERGENCY ==================
	log.Println("Creating map locations and emergency contacts...")
	mapLocations := []domain.MapLocation{
		{PropertyID: villa.ID, Name: "Praia de Faro", Type: "beach", Description: "Long sandy beach, 10 min by car"},
		{PropertyID: villa.ID, Name: "O Castelo", Type: "restaurant", Description: "Seafood, book ahead in summer"},
		{PropertyID: villa.ID, Name: "Cidade Velha viewpoint", Type: "viewpoint", Description: "Best at sunset"},
		{PropertyID: villa.ID, Name: "Ria Formosa Natural Park", Type: "activity", Description: "Kayak and birdwatching tours"},
	}
	for i := range mapLocations {
		db.Create(&mapLocations[i])
	}

	for _, ec := range []domain.EmergencyContact{
		{PropertyID: villa.ID, ServiceType: "medical", Name: "Hospital de Faro", Phone: "+351 289 891 100"},
		{PropertyID: villa.ID, ServiceType: "police", Name: "PSP Faro", Phone: "112"},
		{PropertyID: villa.ID, ServiceType: "host", Name: "Maria Santos", Phone: "+351 912 345 678", Notes: "Available 08:00-22:00"},
	} {
		db.Create(&ec)
	}

	// ================== NOTIFICATIONS ==================
	log.Println("Creating notifications...")
	db.Create(&domain.Notification{
		UserID: guests[0].ID,
		Type:   domain.NotifOrderCreated,
		Title:  "Order created",
		Message: "Your food_delivery order has been created",
	})
	db.Create(&domain.Notification{
		UserID: host.ID,
		Type:   domain.NotifNewMessage,
		Title:  "New message",
		Message: "John sent you a message about Casa do Mar",
		IsRead:  true,
	})

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin: admin@guestnest.io / admin123")
	log.Println("Host:  maria@seasidevillas.com / host123")
	log.Println("Guests: guest1@example.com ... guest3@example.com / guest123")
}
