package render

// Descriptor summarises a page for listings (CLI, preview index).
type Descriptor struct {
	Template Template `json:"-"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Summary  string   `json:"summary"`
}

var summaries = map[Template]string{
	Business:   "Header, hero with call to action, features grid, about, contact and footer with social links.",
	Portfolio:  "Dark full-screen hero with entrance animation, skills grid and a mailto contact button.",
	Ecommerce:  "Store header with cart, banner and a grid of four placeholder products.",
	Blog:       "Serif header with two sample posts stamped with today's date.",
	Landing:    "Single full-screen hero with call to action followed by a features grid.",
	Restaurant: "Header with reservation button, hero, menu teaser, house specialties and visit details.",
}

// Catalog describes every page in display order.
func Catalog() []Descriptor {
	out := make([]Descriptor, 0, len(templateOrder))
	for _, t := range templateOrder {
		out = append(out, t.Describe())
	}
	return out
}

// Describe returns the descriptor for t.
func (t Template) Describe() Descriptor {
	return Descriptor{
		Template: t,
		Name:     t.String(),
		Slug:     t.Slug(),
		Summary:  summaries[t],
	}
}

// Product is a placeholder catalogue entry on the E-commerce page.
type Product struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Post is a sample article on the Blog page.
type Post struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Dish is a menu teaser entry on the Restaurant page.
type Dish struct {
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// PlaceholderProducts are shown regardless of input; there is no catalogue.
func PlaceholderProducts() []Product {
	return []Product{
		{Name: "Product 1", Price: "$99.99"},
		{Name: "Product 2", Price: "$149.99"},
		{Name: "Product 3", Price: "$79.99"},
		{Name: "Product 4", Price: "$199.99"},
	}
}

// SamplePosts are the two articles every new blog starts with.
func SamplePosts() []Post {
	return []Post{
		{
			Title: "Welcome to My Blog",
			Body: "This is your new blog. Start sharing your thoughts, stories, and expertise with the world. " +
				"Create engaging content that resonates with your audience and builds a community around your passion.",
		},
		{
			Title: "Getting Started",
			Body: "Welcome to your blogging journey! This template provides a clean, readable design perfect for " +
				"sharing your ideas. Customize it to match your style and start publishing amazing content.",
		},
	}
}

// MenuTeaser is the fixed set of dishes on the Restaurant page.
func MenuTeaser() []Dish {
	return []Dish{
		{Icon: "🥗", Name: "Garden Salad", Description: "Seasonal greens, herbs and a citrus dressing.", Price: "$12.50"},
		{Icon: "🍝", Name: "Fresh Pasta", Description: "Hand-made tagliatelle with slow-cooked ragù.", Price: "$18.00"},
		{Icon: "🥩", Name: "Grilled Steak", Description: "Charred ribeye with roasted potatoes.", Price: "$29.00"},
		{Icon: "🍰", Name: "House Dessert", Description: "Ask about today's cake from our pastry kitchen.", Price: "$8.50"},
	}
}
