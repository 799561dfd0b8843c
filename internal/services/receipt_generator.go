package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"receipt-insights/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

type merchantProfile struct {
	Name     string
	Category string
	Items    []string
}

type receiptGenerator struct {
	merchantPool []merchantProfile
	rng          *rand.Rand
	faker        *gofakeit.Faker
}

const (
	minItemsPerReceipt = 1
	maxItemsPerReceipt = 8
	businessHoursStart = 7
	businessHoursEnd   = 22

	// Roughly matches the shape of real uploads: most receipts have every
	// field extracted, a tail is missing one or more.
	missingMerchantRate = 0.05
	missingTotalRate    = 0.04
	missingDateRate     = 0.06
	uncategorizedRate   = 0.10
)

// NewReceiptGenerator creates a generator for seeding the local store
func NewReceiptGenerator() ReceiptGeneratorInterface {
	seed := time.Now().UnixNano()
	return &receiptGenerator{
		merchantPool: initializeMerchantPool(),
		rng:          rand.New(rand.NewSource(seed)),
		faker:        gofakeit.New(uint64(seed)),
	}
}

func initializeMerchantPool() []merchantProfile {
	return []merchantProfile{
		// Groceries
		{"Whole Foods Market", models.CategoryGroceries, []string{"Organic Bananas", "Almond Milk", "Sourdough Bread", "Free Range Eggs", "Baby Spinach", "Greek Yogurt"}},
		{"Trader Joe's", models.CategoryGroceries, []string{"Frozen Gyoza", "Everything Bagel Seasoning", "Dark Chocolate", "Orange Chicken", "Sparkling Water"}},
		{"Costco Wholesale", models.CategoryGroceries, []string{"Rotisserie Chicken", "Paper Towels 12pk", "Olive Oil 2L", "Mixed Nuts", "Ground Coffee 2lb"}},
		{"Safeway", models.CategoryGroceries, []string{"Whole Milk", "Cheddar Cheese", "Chicken Breast", "Pasta Sauce", "Cereal"}},
		{"Aldi", models.CategoryGroceries, []string{"Butter", "Sliced Bread", "Apples 3lb", "Frozen Pizza", "Orange Juice"}},

		// Food & Dining
		{"Starbucks", models.CategoryFoodDining, []string{"Grande Latte", "Cold Brew", "Butter Croissant", "Bacon Gouda Sandwich"}},
		{"Chipotle Mexican Grill", models.CategoryFoodDining, []string{"Chicken Burrito Bowl", "Chips & Guacamole", "Barbacoa Tacos", "Fountain Drink"}},
		{"Panera Bread", models.CategoryFoodDining, []string{"Broccoli Cheddar Soup", "Caesar Salad", "Turkey Sandwich", "Iced Tea"}},
		{"Shake Shack", models.CategoryFoodDining, []string{"ShackBurger", "Crinkle Fries", "Chocolate Shake", "Lemonade"}},

		// Transportation
		{"Shell", models.CategoryTransportation, []string{"Regular Unleaded", "Premium Unleaded", "Car Wash", "Windshield Fluid"}},
		{"Chevron", models.CategoryTransportation, []string{"Regular Unleaded", "Diesel", "Motor Oil 5W-30"}},
		{"Uber", models.CategoryTransportation, []string{"UberX Ride", "Uber Comfort Ride", "Airport Trip"}},

		// Shopping
		{"Amazon.com", models.CategoryShopping, []string{"USB-C Cable", "Phone Case", "Desk Lamp", "Wireless Mouse", "Notebook 3pk"}},
		{"Best Buy", models.CategoryShopping, []string{"HDMI Cable", "Bluetooth Speaker", "Laptop Sleeve", "SD Card 128GB"}},
		{"IKEA", models.CategoryShopping, []string{"LACK Side Table", "Frame 30x40", "Scented Candle", "Storage Box"}},
		{"Home Depot", models.CategoryShopping, []string{"LED Bulbs 4pk", "Painters Tape", "Screwdriver Set", "Potting Soil"}},

		// Entertainment
		{"AMC Theatres", models.CategoryEntertainment, []string{"Movie Ticket", "Large Popcorn", "Soda Combo"}},
		{"Steam", models.CategoryEntertainment, []string{"Game Purchase", "DLC Pack", "Soundtrack"}},

		// Utilities
		{"Pacific Gas & Electric", models.CategoryUtilities, []string{"Electric Service", "Gas Service"}},
		{"Comcast Xfinity", models.CategoryUtilities, []string{"Internet Service", "Modem Rental"}},

		// Healthcare
		{"CVS Pharmacy", models.CategoryHealthcare, []string{"Ibuprofen 200mg", "Vitamin D3", "Band-Aids", "Prescription Copay", "Hand Sanitizer"}},
		{"Walgreens", models.CategoryHealthcare, []string{"Allergy Relief", "Cough Drops", "First Aid Kit", "Multivitamins"}},

		// Travel
		{"Delta Air Lines", models.CategoryTravel, []string{"Flight Fare", "Checked Bag Fee", "Seat Upgrade"}},
		{"Marriott Hotels", models.CategoryTravel, []string{"Room Charge", "Resort Fee", "Room Service", "Parking"}},
	}
}

// SelectRandomMerchant selects a random merchant name from the pool
func (g *receiptGenerator) SelectRandomMerchant() string {
	return g.merchantPool[g.rng.Intn(len(g.merchantPool))].Name
}

// GenerateItems generates line items for a merchant using its item pool.
// Unknown merchants fall back to generic product names.
func (g *receiptGenerator) GenerateItems(merchant string) []models.ReceiptItem {
	profile, found := g.profileFor(merchant)

	count := minItemsPerReceipt + g.rng.Intn(maxItemsPerReceipt-minItemsPerReceipt+1)
	items := make([]models.ReceiptItem, 0, count)

	for i := 0; i < count; i++ {
		var name, category string
		if found {
			name = profile.Items[g.rng.Intn(len(profile.Items))]
			category = profile.Category
		} else {
			name = g.faker.ProductName()
			category = models.CategoryOther
		}

		quantity := decimal.NewFromInt(int64(1 + g.rng.Intn(3)))
		unitPrice := decimal.NewFromFloat(1.00 + g.rng.Float64()*60.00).Round(2)

		item := models.ReceiptItem{
			ItemName:   name,
			Quantity:   quantity,
			UnitPrice:  unitPrice,
			TotalPrice: unitPrice.Mul(quantity),
		}
		if g.rng.Float64() >= uncategorizedRate {
			item.Category = &category
		}
		if g.rng.Float64() < 0.3 {
			description := g.faker.ProductDescription()
			item.Description = &description
		}
		items = append(items, item)
	}

	return items
}

// GenerateTimestamp generates a random timestamp within the date range,
// clamped to plausible shopping hours
func (g *receiptGenerator) GenerateTimestamp(startDate, endDate time.Time) time.Time {
	diff := endDate.Sub(startDate)
	if diff <= 0 {
		return startDate
	}
	timestamp := startDate.Add(time.Duration(g.rng.Int63n(int64(diff))))

	hour := businessHoursStart + g.rng.Intn(businessHoursEnd-businessHoursStart)
	minute := g.rng.Intn(60)
	second := g.rng.Intn(60)

	return time.Date(
		timestamp.Year(),
		timestamp.Month(),
		timestamp.Day(),
		hour,
		minute,
		second,
		0,
		time.UTC,
	)
}

// GenerateReceipt generates a single receipt created at the given time.
// Some fields are deliberately left absent to mirror imperfect extraction.
func (g *receiptGenerator) GenerateReceipt(createdAt time.Time) *models.Receipt {
	merchant := g.SelectRandomMerchant()
	items := g.GenerateItems(merchant)

	receipt := &models.Receipt{
		Filename:  g.generateFilename(merchant, createdAt),
		FilePath:  fmt.Sprintf("/uploads/%d/%02d/%s", createdAt.Year(), int(createdAt.Month()), g.faker.UUID()),
		CreatedAt: createdAt,
		Items:     items,
	}

	if g.rng.Float64() >= missingMerchantRate {
		receipt.MerchantName = &merchant
	}
	if g.rng.Float64() >= missingTotalRate {
		total := itemSum(items)
		receipt.TotalAmount = &total
	}
	if g.rng.Float64() >= missingDateRate {
		// The purchase usually predates the upload by a few days
		purchase := createdAt.AddDate(0, 0, -g.rng.Intn(5))
		receipt.PurchaseDate = &purchase
	}
	if g.rng.Float64() < 0.8 {
		raw := g.generateRawText(merchant, items)
		receipt.RawText = &raw
	}

	return receipt
}

// GenerateReceipts generates receipts spread across the date range, sorted
// by creation time
func (g *receiptGenerator) GenerateReceipts(count int, startDate, endDate time.Time) []*models.Receipt {
	receipts := make([]*models.Receipt, 0, count)
	for i := 0; i < count; i++ {
		receipts = append(receipts, g.GenerateReceipt(g.GenerateTimestamp(startDate, endDate)))
	}
	sortReceiptsByCreation(receipts)
	return receipts
}

func (g *receiptGenerator) profileFor(merchant string) (merchantProfile, bool) {
	for _, profile := range g.merchantPool {
		if profile.Name == merchant {
			return profile, true
		}
	}
	return merchantProfile{}, false
}

func (g *receiptGenerator) generateFilename(merchant string, createdAt time.Time) string {
	slug := strings.ToLower(strings.NewReplacer(" ", "_", "'", "", "&", "and", ".", "").Replace(merchant))
	extensions := []string{"jpg", "png", "pdf"}
	return fmt.Sprintf("%s_%s_%04d.%s",
		slug,
		createdAt.Format("20060102"),
		g.rng.Intn(10000),
		extensions[g.rng.Intn(len(extensions))])
}

func (g *receiptGenerator) generateRawText(merchant string, items []models.ReceiptItem) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(merchant))
	b.WriteString("\n")
	b.WriteString(g.faker.Street())
	b.WriteString("\n\n")
	for i := range items {
		fmt.Fprintf(&b, "%-24s %8s\n", items[i].ItemName, items[i].TotalPrice.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTOTAL %s\n", itemSum(items).StringFixed(2))
	return b.String()
}

func itemSum(items []models.ReceiptItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].TotalPrice)
	}
	return total
}

func sortReceiptsByCreation(receipts []*models.Receipt) {
	for i := 0; i < len(receipts); i++ {
		for j := i + 1; j < len(receipts); j++ {
			if receipts[i].CreatedAt.After(receipts[j].CreatedAt) {
				receipts[i], receipts[j] = receipts[j], receipts[i]
			}
		}
	}
}
