package catalog

// Definition is a static product entry before price generation.
type Definition struct {
	ID        string
	Name      string
	Category  Category
	Brand     string
	Size      string
	Image     string
	Tags      []string
	IsOrganic bool
	Rating    float64
}

// DefaultBasePrice is used for products missing from the base-price table.
const DefaultBasePrice int64 = 199

var definitions = []Definition{
	// Dairy
	{
		ID:       "milk-semi-2l",
		Name:     "Semi-Skimmed Milk",
		Category: CategoryDairy,
		Brand:    "Various",
		Size:     "2 Litres",
		Image:    "https://images.pexels.com/photos/416978/pexels-photo-416978.jpeg",
		Tags:     []string{"fresh", "dairy", "milk"},
		Rating:   4.5,
	},
	{
		ID:       "butter-250g",
		Name:     "Salted Butter",
		Category: CategoryDairy,
		Brand:    "Lurpak",
		Size:     "250g",
		Image:    "https://images.pexels.com/photos/4110006/pexels-photo-4110006.jpeg",
		Tags:     []string{"dairy", "butter", "cooking"},
		Rating:   4.7,
	},
	{
		ID:        "eggs-dozen",
		Name:      "Free Range Eggs",
		Category:  CategoryDairy,
		Brand:     "Various",
		Size:      "12 Pack",
		Image:     "https://images.pexels.com/photos/162712/egg-white-food-eating-162712.jpeg",
		Tags:      []string{"eggs", "free-range", "protein"},
		IsOrganic: true,
		Rating:    4.6,
	},
	{
		ID:       "cheese-cheddar-400g",
		Name:     "Mature Cheddar Cheese",
		Category: CategoryDairy,
		Brand:    "Cathedral City",
		Size:     "400g",
		Image:    "https://images.pexels.com/photos/773253/pexels-photo-773253.jpeg",
		Tags:     []string{"cheese", "cheddar", "mature"},
		Rating:   4.4,
	},

	// Bakery
	{
		ID:       "bread-white-800g",
		Name:     "White Sliced Bread",
		Category: CategoryBakery,
		Brand:    "Hovis",
		Size:     "800g",
		Image:    "https://images.pexels.com/photos/209206/pexels-photo-209206.jpeg",
		Tags:     []string{"bread", "white", "sliced"},
		Rating:   4.2,
	},
	{
		ID:       "bread-wholemeal-800g",
		Name:     "Wholemeal Bread",
		Category: CategoryBakery,
		Brand:    "Warburtons",
		Size:     "800g",
		Image:    "https://images.pexels.com/photos/1775043/pexels-photo-1775043.jpeg",
		Tags:     []string{"bread", "wholemeal", "healthy"},
		Rating:   4.3,
	},
	{
		ID:       "croissants-6pack",
		Name:     "All Butter Croissants",
		Category: CategoryBakery,
		Brand:    "Various",
		Size:     "6 Pack",
		Image:    "https://images.pexels.com/photos/2147491/pexels-photo-2147491.jpeg",
		Tags:     []string{"croissants", "pastry", "butter"},
		Rating:   4.1,
	},

	// Meat & fish
	{
		ID:       "chicken-breast-1kg",
		Name:     "Chicken Breast Fillets",
		Category: CategoryMeat,
		Brand:    "Various",
		Size:     "1kg",
		Image:    "https://images.pexels.com/photos/2338407/pexels-photo-2338407.jpeg",
		Tags:     []string{"chicken", "fresh", "protein"},
		Rating:   4.3,
	},
	{
		ID:       "beef-mince-500g",
		Name:     "Lean Beef Mince",
		Category: CategoryMeat,
		Brand:    "Various",
		Size:     "500g",
		Image:    "https://images.pexels.com/photos/3688/food-dinner-lunch-chicken.jpg",
		Tags:     []string{"beef", "mince", "lean"},
		Rating:   4.2,
	},
	{
		ID:       "salmon-fillet-400g",
		Name:     "Atlantic Salmon Fillet",
		Category: CategoryMeat,
		Brand:    "Various",
		Size:     "400g",
		Image:    "https://images.pexels.com/photos/1409050/pexels-photo-1409050.jpeg",
		Tags:     []string{"salmon", "fish", "omega-3"},
		Rating:   4.5,
	},

	// Vegetables
	{
		ID:       "potatoes-2kg",
		Name:     "White Potatoes",
		Category: CategoryVegetables,
		Brand:    "Various",
		Size:     "2kg",
		Image:    "https://images.pexels.com/photos/144248/potatoes-vegetables-erdfrucht-bio-144248.jpeg",
		Tags:     []string{"potatoes", "vegetables", "fresh"},
		Rating:   4.0,
	},
	{
		ID:        "carrots-1kg",
		Name:      "Carrots",
		Category:  CategoryVegetables,
		Brand:     "Various",
		Size:      "1kg",
		Image:     "https://images.pexels.com/photos/143133/pexels-photo-143133.jpeg",
		Tags:      []string{"carrots", "vegetables", "vitamin-a"},
		IsOrganic: true,
		Rating:    4.1,
	},
	{
		ID:       "onions-1kg",
		Name:     "Brown Onions",
		Category: CategoryVegetables,
		Brand:    "Various",
		Size:     "1kg",
		Image:    "https://images.pexels.com/photos/533342/pexels-photo-533342.jpeg",
		Tags:     []string{"onions", "vegetables", "cooking"},
		Rating:   4.0,
	},
	{
		ID:       "tomatoes-500g",
		Name:     "Cherry Tomatoes",
		Category: CategoryVegetables,
		Brand:    "Various",
		Size:     "500g",
		Image:    "https://images.pexels.com/photos/533280/pexels-photo-533280.jpeg",
		Tags:     []string{"tomatoes", "cherry", "fresh"},
		Rating:   4.2,
	},

	// Fruits
	{
		ID:       "bananas-1kg",
		Name:     "Bananas",
		Category: CategoryFruits,
		Brand:    "Various",
		Size:     "1kg",
		Image:    "https://images.pexels.com/photos/2872755/pexels-photo-2872755.jpeg",
		Tags:     []string{"bananas", "fruits", "potassium"},
		Rating:   4.3,
	},
	{
		ID:       "apples-1kg",
		Name:     "Gala Apples",
		Category: CategoryFruits,
		Brand:    "Various",
		Size:     "1kg",
		Image:    "https://images.pexels.com/photos/102104/pexels-photo-102104.jpeg",
		Tags:     []string{"apples", "gala", "fresh"},
		Rating:   4.4,
	},
	{
		ID:       "oranges-1kg",
		Name:     "Navel Oranges",
		Category: CategoryFruits,
		Brand:    "Various",
		Size:     "1kg",
		Image:    "https://images.pexels.com/photos/161559/background-bitter-breakfast-bright-161559.jpeg",
		Tags:     []string{"oranges", "citrus", "vitamin-c"},
		Rating:   4.2,
	},

	// Pantry
	{
		ID:       "rice-1kg",
		Name:     "Basmati Rice",
		Category: CategoryPantry,
		Brand:    "Tilda",
		Size:     "1kg",
		Image:    "https://images.pexels.com/photos/723198/pexels-photo-723198.jpeg",
		Tags:     []string{"rice", "basmati", "grain"},
		Rating:   4.5,
	},
	{
		ID:       "pasta-500g",
		Name:     "Spaghetti",
		Category: CategoryPantry,
		Brand:    "Barilla",
		Size:     "500g",
		Image:    "https://images.pexels.com/photos/1437267/pexels-photo-1437267.jpeg",
		Tags:     []string{"pasta", "spaghetti", "italian"},
		Rating:   4.4,
	},
	{
		ID:       "olive-oil-500ml",
		Name:     "Extra Virgin Olive Oil",
		Category: CategoryPantry,
		Brand:    "Various",
		Size:     "500ml",
		Image:    "https://images.pexels.com/photos/33783/olive-oil-salad-dressing-cooking-olive.jpg",
		Tags:     []string{"oil", "olive", "cooking"},
		Rating:   4.6,
	},

	// Beverages
	{
		ID:       "orange-juice-1l",
		Name:     "Freshly Squeezed Orange Juice",
		Category: CategoryBeverages,
		Brand:    "Tropicana",
		Size:     "1 Litre",
		Image:    "https://images.pexels.com/photos/96974/pexels-photo-96974.jpeg",
		Tags:     []string{"juice", "orange", "fresh"},
		Rating:   4.3,
	},
	{
		ID:       "coffee-200g",
		Name:     "Ground Coffee",
		Category: CategoryBeverages,
		Brand:    "Nescafe",
		Size:     "200g",
		Image:    "https://images.pexels.com/photos/894695/pexels-photo-894695.jpeg",
		Tags:     []string{"coffee", "ground", "caffeine"},
		Rating:   4.1,
	},
	{
		ID:       "tea-bags-80",
		Name:     "English Breakfast Tea",
		Category: CategoryBeverages,
		Brand:    "PG Tips",
		Size:     "80 Bags",
		Image:    "https://images.pexels.com/photos/230477/pexels-photo-230477.jpeg",
		Tags:     []string{"tea", "english", "breakfast"},
		Rating:   4.5,
	},
}

// Base prices in pence.
var basePrices = map[string]int64{
	"milk-semi-2l":         125,
	"butter-250g":          349,
	"eggs-dozen":           285,
	"cheese-cheddar-400g":  425,
	"bread-white-800g":     105,
	"bread-wholemeal-800g": 125,
	"croissants-6pack":     199,
	"chicken-breast-1kg":   599,
	"beef-mince-500g":      425,
	"salmon-fillet-400g":   649,
	"potatoes-2kg":         149,
	"carrots-1kg":          89,
	"onions-1kg":           95,
	"tomatoes-500g":        189,
	"bananas-1kg":          118,
	"apples-1kg":           199,
	"oranges-1kg":          225,
	"rice-1kg":             249,
	"pasta-500g":           89,
	"olive-oil-500ml":      449,
	"orange-juice-1l":      249,
	"coffee-200g":          399,
	"tea-bags-80":          329,
}

// Definitions returns the static product definitions in catalog order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// BasePrice returns the base price for a product id, falling back to
// DefaultBasePrice for unknown ids.
func BasePrice(productID string) int64 {
	if p, ok := basePrices[productID]; ok {
		return p
	}
	return DefaultBasePrice
}
