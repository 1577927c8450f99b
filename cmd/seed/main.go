package main

import (
	"context"
	"fmt"
	"time"

	"venuebook/internal/venues/repository"
	"venuebook/pkg/config"
	"venuebook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

const JobName = "venue-seed"

func rating(r float64) *float64 { return &r }

var venues = []*model.Venue{
	{
		Name:          "Mountain Vista Lodge",
		Description:   "A stunning mountain retreat with panoramic views, perfect for team building and strategic planning sessions. Features modern conference facilities and outdoor adventure activities.",
		City:          "Aspen",
		Address:       "1250 Mountain View Road, Aspen, CO 81611",
		Capacity:      50,
		PricePerNight: 850,
		Amenities:     []string{"WiFi", "Conference Room", "Catering", "Outdoor Terrace", "Hiking Trails", "Spa", "Fireplace Lounge"},
		ImageURL:      "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800",
		Rating:        rating(4.8),
	},
	{
		Name:          "Coastal Breeze Resort",
		Description:   "A beachfront property offering a relaxed atmosphere for creative workshops and team retreats. Enjoy ocean views from every meeting room.",
		City:          "San Diego",
		Address:       "4500 Pacific Coast Highway, San Diego, CA 92109",
		Capacity:      80,
		PricePerNight: 1200,
		Amenities:     []string{"WiFi", "Beachfront", "Conference Center", "Restaurant", "Pool", "Team Sports", "Sunset Deck"},
		ImageURL:      "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800",
		Rating:        rating(4.9),
	},
	{
		Name:          "Urban Innovation Hub",
		Description:   "A sleek downtown venue designed for tech companies and startups. State-of-the-art AV equipment and flexible workspace configurations.",
		City:          "Austin",
		Address:       "200 Congress Avenue, Austin, TX 78701",
		Capacity:      100,
		PricePerNight: 650,
		Amenities:     []string{"High-Speed WiFi", "AV Equipment", "Breakout Rooms", "Rooftop Bar", "Catering", "Parking"},
		ImageURL:      "https://images.unsplash.com/photo-1497366216548-37526070297c?w=800",
		Rating:        rating(4.6),
	},
	{
		Name:          "Vineyard Estate",
		Description:   "An elegant wine country estate perfect for executive retreats and company celebrations. Includes wine tasting experiences and gourmet dining.",
		City:          "Napa",
		Address:       "8800 Silverado Trail, Napa, CA 94558",
		Capacity:      40,
		PricePerNight: 1500,
		Amenities:     []string{"WiFi", "Wine Cellar", "Private Chef", "Garden", "Meeting Rooms", "Vineyard Tours", "Luxury Suites"},
		ImageURL:      "https://images.unsplash.com/photo-1510076857177-7470076d4098?w=800",
		Rating:        rating(4.9),
	},
	{
		Name:          "Forest Retreat Center",
		Description:   "A peaceful woodland sanctuary ideal for mindfulness retreats and focused work sessions. Disconnect from distractions and reconnect with your team.",
		City:          "Portland",
		Address:       "15000 Forest Park Lane, Portland, OR 97231",
		Capacity:      35,
		PricePerNight: 550,
		Amenities:     []string{"WiFi", "Meditation Room", "Yoga Studio", "Nature Trails", "Organic Catering", "Bonfire Pit"},
		ImageURL:      "https://images.unsplash.com/photo-1449158743715-0a90ebb6d2d8?w=800",
		Rating:        rating(4.7),
	},
	{
		Name:          "Desert Oasis Resort",
		Description:   "A luxurious desert escape with stunning sunset views and world-class amenities. Perfect for incentive trips and leadership summits.",
		City:          "Scottsdale",
		Address:       "7200 E Camelback Road, Scottsdale, AZ 85251",
		Capacity:      120,
		PricePerNight: 950,
		Amenities:     []string{"WiFi", "Golf Course", "Spa", "Multiple Pools", "Conference Facilities", "Fine Dining", "Desert Tours"},
		ImageURL:      "https://images.unsplash.com/photo-1582719508461-905c673771fd?w=800",
		Rating:        rating(4.8),
	},
	{
		Name:          "Historic Manor House",
		Description:   "A beautifully restored 19th-century manor offering old-world charm with modern conveniences. Ideal for board meetings and exclusive events.",
		City:          "Charleston",
		Address:       "350 Meeting Street, Charleston, SC 29403",
		Capacity:      30,
		PricePerNight: 1100,
		Amenities:     []string{"WiFi", "Library", "Garden Courtyard", "Private Dining", "Antique Furnishings", "Concierge Service"},
		ImageURL:      "https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=800",
		Rating:        rating(4.9),
	},
	{
		Name:          "Lakeside Conference Center",
		Description:   "A modern facility on the shores of a pristine lake. Combine productive meetings with water activities and team bonding experiences.",
		City:          "Lake Tahoe",
		Address:       "6500 Lakefront Drive, Lake Tahoe, CA 96150",
		Capacity:      75,
		PricePerNight: 780,
		Amenities:     []string{"WiFi", "Lake Access", "Kayaks", "Conference Rooms", "Restaurant", "Mountain Biking", "Ski Access"},
		ImageURL:      "https://images.unsplash.com/photo-1439066615861-d1af74d74000?w=800",
		Rating:        rating(4.7),
	},
	{
		Name:          "Sky Tower Business Hotel",
		Description:   "A contemporary high-rise venue in the heart of downtown Manhattan. Perfect for client meetings and corporate events with stunning city views.",
		City:          "New York",
		Address:       "200 Park Avenue, New York, NY 10166",
		Capacity:      200,
		PricePerNight: 2000,
		Amenities:     []string{"High-Speed WiFi", "Business Center", "Multiple Event Spaces", "Fine Dining", "Gym", "Concierge", "Valet Parking"},
		ImageURL:      "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?w=800",
		Rating:        rating(4.5),
	},
	{
		Name:          "Tropical Island Retreat",
		Description:   "An exclusive beachfront property offering the ultimate escape for team rewards and strategic planning in paradise.",
		City:          "Miami",
		Address:       "1800 Collins Avenue, Miami Beach, FL 33139",
		Capacity:      60,
		PricePerNight: 1350,
		Amenities:     []string{"WiFi", "Private Beach", "Water Sports", "Spa", "Multiple Restaurants", "Tennis Courts", "Nightclub"},
		ImageURL:      "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=800",
		Rating:        rating(4.8),
	},
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	cfg.Log.Info("Starting venue seed job")
	defer cfg.GracefulShutdown()

	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	count, err := db.Collection(repository.CollectionName).CountDocuments(ctx, bson.M{})
	if err != nil {
		cfg.Log.Fatal("Failed to inspect venues collection", "error", err)
	}
	if count > 0 {
		cfg.Log.Info("Venues collection already seeded, skipping", "count", count)
		return
	}

	repo := repository.NewMongoVenueRepository(cfg)
	for _, venue := range venues {
		if err := repo.Insert(ctx, venue); err != nil {
			cfg.Log.Fatal("Failed to seed venue", "name", venue.Name, "error", err)
		}
		cfg.Log.Info("Seeded venue", "id", venue.ID, "name", venue.Name, "city", venue.City)
	}

	fmt.Printf("Seeded %d venues.\n", len(venues))
}
