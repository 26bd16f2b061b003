package account

import "time"

// Storage keys. Session-scoped unless noted.
const (
	AuthKey   = "isAuthenticated"
	SplashKey = "hasSeenSplash"

	// accountKeyPrefix namespaces registered accounts globally, outside any
	// session.
	accountKeyPrefix = "account:"
)

// Account is a registered email/password pair.
type Account struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Route is where the splash screen sends the shopper.
type Route string

const (
	RouteOnboarding Route = "onboarding"
	RouteHome       Route = "home"
)

type Slide struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var onboardingSlides = []Slide{
	{Title: "Welcome to Bold Electronics", Description: "Your one-stop shop for all electronics and components"},
	{Title: "Discover Quality Products", Description: "Browse through our wide range of electronic gadgets and components"},
	{Title: "Fast & Secure Checkout", Description: "Experience hassle-free shopping with our secure payment system"},
}
