// Package stack is the registry of technologies a project can be tagged
// with. Each identifier maps to a display label and a badge color.
package stack

import (
	"fmt"

	"github.com/Bitlatte/portfolio/internal/palette"
)

// Stack identifies a technology.
type Stack int

const (
	// Languages
	Java Stack = iota
	Go
	TypeScript
	JavaScript

	// Frontend
	Angular
	React

	// Backend
	Spring
	SpringBoot
	Laravel

	// Cloud
	AWS

	// Messaging
	RabbitMQ
	Kafka

	// Databases
	Postgres
	MySQL
	Mongo

	// Tools
	Docker
	Kubernetes

	// Architecture
	DistributedSystems
	Microservices

	// AI
	DeepLearning
	MachineLearning
	ImageClassification
	CNN
	DeepLearning4j
	LLM
	Langchain4j
	GenAI

	numStacks
)

// Info is what a badge shows for a Stack.
type Info struct {
	Label string
	Color palette.Color
}

type entry struct {
	name string
	info Info
}

// registry is indexed by Stack. The length check below fails to compile
// when an identifier is added without a matching entry.
var registry = [...]entry{
	Java:                {"java", Info{"Java", palette.JavaScript}},
	Go:                  {"go", Info{"Go", palette.Go}},
	TypeScript:          {"typescript", Info{"TypeScript", palette.TypeScript}},
	JavaScript:          {"javascript", Info{"Javascript", palette.JavaScript}},
	Angular:             {"angular", Info{"Angular", palette.Angular}},
	React:               {"react", Info{"React", palette.React}},
	Spring:              {"spring", Info{"Spring Frameworks", palette.Spring}},
	SpringBoot:          {"springBoot", Info{"Spring Boot", palette.SpringBoot}},
	Laravel:             {"laravel", Info{"Laravel", palette.Laravel}},
	AWS:                 {"aws", Info{"AWS", palette.AWS}},
	RabbitMQ:            {"rabbitMq", Info{"RabbitMQ", palette.RabbitMQ}},
	Kafka:               {"kafka", Info{"Kafka", palette.Kafka}},
	Postgres:            {"postgres", Info{"Postgres", palette.Postgres}},
	MySQL:               {"mysql", Info{"MySQL", palette.MySQL}},
	Mongo:               {"mongo", Info{"MongoDB", palette.Mongo}},
	Docker:              {"docker", Info{"Docker", palette.Docker}},
	Kubernetes:          {"kubernetes", Info{"Kubernetes", palette.Kubernetes}},
	DistributedSystems:  {"distributedSystems", Info{"Distributed Systems", palette.DistributedSystems}},
	Microservices:       {"microservices", Info{"Microservices", palette.Microservices}},
	DeepLearning:        {"deepLearning", Info{"Deep Learning", palette.DeepLearning}},
	MachineLearning:     {"machineLearning", Info{"Machine Learning", palette.MachineLearning}},
	ImageClassification: {"imageClassification", Info{"Image Classification", palette.ImageClassification}},
	CNN:                 {"cnn", Info{"CNN", palette.CNN}},
	DeepLearning4j:      {"deepLearning4j", Info{"DeepLearning4j", palette.DeepLearning4j}},
	LLM:                 {"llm", Info{"LLM", palette.LLM}},
	Langchain4j:         {"langchain4j", Info{"Langchain4j", palette.Langchain4j}},
	GenAI:               {"genAI", Info{"GenAI", palette.GenAI}},
}

var _ [len(registry) - int(numStacks)]struct{}
var _ [int(numStacks) - len(registry)]struct{}

// All returns every identifier in declaration order.
func All() []Stack {
	out := make([]Stack, 0, numStacks)
	for s := Stack(0); s < numStacks; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is a declared identifier.
func (s Stack) Valid() bool {
	return s >= 0 && s < numStacks
}

// Lookup returns the badge info for s.
func Lookup(s Stack) (Info, bool) {
	if !s.Valid() {
		return Info{}, false
	}
	return registry[s].info, true
}

// Info is Lookup without the ok flag; unknown identifiers yield a zero Info.
func (s Stack) Info() Info {
	info, _ := Lookup(s)
	return info
}

func (s Stack) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stack(%d)", int(s))
	}
	return registry[s].name
}

// Validate checks that every identifier has a label and color and that
// names are unique.
func Validate() error {
	seen := make(map[string]Stack, numStacks)
	for i, e := range registry {
		s := Stack(i)
		if e.name == "" || e.info.Label == "" || e.info.Color == "" {
			return fmt.Errorf("stack %d has an incomplete registry entry", i)
		}
		if prev, ok := seen[e.name]; ok {
			return fmt.Errorf("stack name %q used by both %d and %d", e.name, int(prev), int(s))
		}
		seen[e.name] = s
	}
	return nil
}

// WorkStack is the list of technologies shown on the about page.
func WorkStack() []Stack {
	return []Stack{
		Java,
		Spring,
		SpringBoot,
		Go,
		TypeScript,
		React,
		Angular,
		DistributedSystems,
		Docker,
		Kubernetes,
		AWS,
		RabbitMQ,
		Kafka,
		Postgres,
		MySQL,
	}
}
