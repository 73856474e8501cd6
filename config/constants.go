package config

// Pipeline Constants
const (
	// PreviewLimit caps the number of posts produced by the preview flow
	PreviewLimit = 3

	// DefaultMaxTokens bounds the generated completion length
	DefaultMaxTokens = 500

	// DefaultOpenAIModel is the chat model used when OPENAI_MODEL is unset
	DefaultOpenAIModel = "gpt-4"

	// DefaultCohereModel is the chat model used when COHERE_MODEL is unset
	DefaultCohereModel = "command-r"
)

// Prompt and Markup Constants
const (
	// PromptTemplate receives the item title, summary and link, in that order
	PromptTemplate = `Write a short sneaker blog post in the tone of complex.com based on this title and summary.

Title: %s
Summary: %s
URL: %s`

	// PostBodyTemplate receives the image URL, the escaped title (alt text) and the content
	PostBodyTemplate = `<div class="sneaker-post"><img src="%s" alt="%s" style="max-width:100%%;height:auto;" /><div class="sneaker-post-content">%s</div></div>`

	// PlaceholderImage is the last step of the image fallback chain
	PlaceholderImage = "https://via.placeholder.com/600x400?text=Sneakers"
)

// BlogTags is the fixed tag set attached to every published article
var BlogTags = []string{"Sneakers", "Sneaker News", "Streetwear"}

// Brand pairs a title keyword with its static logo image
type Brand struct {
	Keyword string
	LogoURL string
}

// BrandLogos is checked in order; the first keyword found in a title wins
var BrandLogos = []Brand{
	{Keyword: "jordan", LogoURL: "https://upload.wikimedia.org/wikipedia/en/3/37/Jumpman_logo.svg"},
	{Keyword: "nike", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/a/a6/Logo_NIKE.svg"},
	{Keyword: "adidas", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/2/20/Adidas_Logo.svg"},
	{Keyword: "yeezy", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/2/20/Adidas_Logo.svg"},
	{Keyword: "new balance", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/e/ea/New_Balance_logo.svg"},
	{Keyword: "puma", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/8/88/Puma-Logo.png"},
	{Keyword: "reebok", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/1/11/Reebok_2019_logo.svg"},
	{Keyword: "converse", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/3/30/Converse_logo.svg"},
	{Keyword: "vans", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/9/91/Vans-logo.svg"},
	{Keyword: "asics", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/b/b1/Asics_Logo.svg"},
}
