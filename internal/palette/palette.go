// Package palette holds the named colors used for stack badges and
// social links.
package palette

// Color is a CSS color value, usually a hex triplet.
type Color string

// Languages
const (
	TypeScript Color = "#234A84"
	JavaScript Color = "#F0DB4F"
	Go         Color = "#00ADD8"
)

// Frontend
const (
	React   Color = "#61DAF6"
	Angular Color = "#DD0031"
)

// Backend
const (
	Spring     Color = "#6DB33F"
	SpringBoot Color = "#6DB33F"
	Laravel    Color = "#FF2D20"
)

// Databases
const (
	MySQL    Color = "#4479A1"
	Postgres Color = "#336791"
	Mongo    Color = "#4DB33D"
)

// Cloud
const (
	AWS                Color = "#FF9900"
	Docker             Color = "#0DB7ED"
	Kubernetes         Color = "#326CE5"
	DistributedSystems Color = "#404040"
)

// Messaging
const (
	RabbitMQ Color = "#FF6600"
	Kafka    Color = "#000000"
)

// AI
const (
	DeepLearning        Color = "#FF5733"
	MachineLearning     Color = "#C70039"
	ImageClassification Color = "#900C3F"
	CNN                 Color = "#581845"
	DeepLearning4j      Color = "#1C2833"
	Langchain4j         Color = "#17202A"
	GenAI               Color = "#21618C"
	LLM                 Color = "#5B2C6F"
)

// Social
const (
	GitHub       Color = "#181717"
	LinkedIn     Color = "#0077B5"
	Twitter      Color = "#1DA1F2"
	YouTube      Color = "#FF0000"
	Email        Color = "#D44638"
	BuyMeACoffee Color = "#FFDD00"
)

// Misc.
const (
	Microservices Color = "#1890FF"
	Testing       Color = "#049C64"
	Tutorial      Color = "#4DD0E1"
)

// highlights are the pastel-friendly colors the home banner draws its
// link highlights from.
var highlights = []Color{
	Go, React, Spring, AWS, Docker, RabbitMQ, Testing, Tutorial, BuyMeACoffee, Microservices,
}

// HighlightPair returns two distinct highlight colors chosen by seed.
// The same seed always yields the same pair so builds are reproducible.
func HighlightPair(seed int) (Color, Color) {
	n := len(highlights)
	if seed < 0 {
		seed = -seed
	}
	first := seed % n
	second := (first + 1 + (seed/n)%(n-1)) % n
	return highlights[first], highlights[second]
}
