package util

import (
	"math/rand"
	"strings"
)

const alpha = "abcdefghjklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max
func RandomInt(min, max int64) int64 {
	if max < min {
		min, max = max, min // swap if needed
	}
	return rand.Int63n(max-min+1) + min
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alpha)

	for range n {
		c := alpha[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomSkillName generates a tech-sounding skill name like "Quantum Pipelines abcd"
// The random suffix keeps names unique across test runs against a shared database.
func RandomSkillName() string {
	techWords := []string{
		"Neural", "Quantum", "Cloud", "Data", "Stream", "Graph", "Kernel", "Vector", "Signal", "API",
	}
	suffixWords := []string{
		"Modeling", "Pipelines", "Testing", "Design", "Tuning", "Security", "Caching", "Tracing",
	}

	return techWords[rand.Intn(len(techWords))] + " " +
		suffixWords[rand.Intn(len(suffixWords))] + " " +
		RandomString(4)
}

// RandomCategory returns one of the catalog's skill categories
func RandomCategory() string {
	categories := []string{
		"Programming Language", "Frontend Framework", "Backend", "Database",
		"Version Control", "DevOps", "Testing", "Computer Science",
	}
	return categories[rand.Intn(len(categories))]
}

// RandomDifficulty returns a random difficulty level: "beginner", "intermediate", or "advanced"
func RandomDifficulty() string {
	options := []string{"beginner", "intermediate", "advanced"}
	return options[rand.Intn(len(options))]
}

// RandomURL generates a random learning resource URL
func RandomURL() string {
	return "https://learn." + RandomString(6) + ".com/" + RandomString(8)
}
