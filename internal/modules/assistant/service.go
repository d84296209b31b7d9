package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"guestnest/internal/domain"
)

var ErrUnavailable = errors.New("assistant is not configured")

type PropertyReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	ListEquipment(ctx context.Context, propertyID int64) ([]domain.EquipmentInstruction, error)
	ListHouseRules(ctx context.Context, propertyID int64) ([]domain.HouseRule, error)
}

type LocationLister interface {
	ListLocations(ctx context.Context, propertyID int64, locType string) ([]domain.MapLocation, error)
}

type ChatResult struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

type ItineraryResult struct {
	Itinerary   string `json:"itinerary"`
	Date        string `json:"date"`
	GeneratedAt string `json:"generated_at"`
}

const chatSystemPrompt = `You are a helpful AI assistant for a rental property guest experience app.
Your role is to help guests with:
1. Property-specific questions and information
2. Equipment instructions and troubleshooting
3. Local recommendations (restaurants, beaches, viewpoints, historical sites, activities)
4. General travel guidance

%s

Be friendly, concise, and helpful. If you don't know something specific about the property, say so but try to provide general helpful information.`

// Service answers guest questions with property context and generates day
// trip itineraries. completer may be nil when no API key is configured.
type Service struct {
	completer  Completer
	properties PropertyReader
	locations  LocationLister
}

func NewService(completer Completer, properties PropertyReader, locations LocationLister) *Service {
	return &Service{completer: completer, properties: properties, locations: locations}
}

func (s *Service) Chat(ctx context.Context, message string, propertyID *int64) (*ChatResult, error) {
	if s.completer == nil {
		return nil, ErrUnavailable
	}

	var propertyContext string
	if propertyID != nil {
		propertyContext = s.buildPropertyContext(ctx, *propertyID)
	}
	if propertyContext != "" {
		propertyContext = "Current Property Context:\n" + propertyContext
	}

	answer, err := s.completer.Complete(ctx, fmt.Sprintf(chatSystemPrompt, propertyContext), message, 0.7, 500)
	if err != nil {
		return nil, err
	}

	return &ChatResult{
		Response:  answer,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *Service) GenerateItinerary(ctx context.Context, propertyID int64, date, preferences string) (*ItineraryResult, error) {
	if s.completer == nil {
		return nil, ErrUnavailable
	}

	locations, err := s.locations.ListLocations(ctx, propertyID, "")
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a day trip itinerary for %s.\nAvailable locations:\n", date)
	for _, l := range locations {
		fmt.Fprintf(&b, "- %s (%s): %s\n", l.Name, l.Type, l.Description)
	}
	if preferences != "" {
		fmt.Fprintf(&b, "\nGuest preferences: %s\n", preferences)
	}
	b.WriteString("\nProvide a structured itinerary with times, activities, and recommendations.")

	itinerary, err := s.completer.Complete(ctx,
		"You are a travel planning assistant. Create detailed, practical day trip itineraries.",
		b.String(), 0.8, 800)
	if err != nil {
		return nil, err
	}

	return &ItineraryResult{
		Itinerary:   itinerary,
		Date:        date,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// buildPropertyContext collects everything the model should know about the
// property. Lookup failures degrade to an empty context rather than failing
// the chat.
func (s *Service) buildPropertyContext(ctx context.Context, propertyID int64) string {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Property Information:\n- Name: %s\n- Address: %s\n- Description: %s\n",
		p.Name, orNA(p.Address), orNA(p.Description))

	if equipment, err := s.properties.ListEquipment(ctx, propertyID); err == nil && len(equipment) > 0 {
		b.WriteString("\nEquipment Instructions:\n")
		for _, e := range equipment {
			fmt.Fprintf(&b, "- %s: %s\n", e.EquipmentName, e.Instructions)
		}
	}

	if rules, err := s.properties.ListHouseRules(ctx, propertyID); err == nil && len(rules) > 0 {
		b.WriteString("\nHouse Rules:\n")
		for _, r := range rules {
			fmt.Fprintf(&b, "- %s\n", r.RuleText)
		}
	}

	if locations, err := s.locations.ListLocations(ctx, propertyID, ""); err == nil && len(locations) > 0 {
		b.WriteString("\nNearby Locations:\n")
		for _, l := range locations {
			fmt.Fprintf(&b, "- %s (%s): %s\n", l.Name, l.Type, l.Description)
		}
	}

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
