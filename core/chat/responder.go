package chat

import (
	"strings"

	"github.com/edustack/studyhub/core"
)

// The knowledge base is an ordered priority list, not a map: the first rule
// that matches wins even when a short key is a substring of a longer one,
// so insertion order is part of the contract.
type rule struct {
	key    string
	answer string
}

var knowledgeBase = []rule{
	{"what is react",
		"React is a JavaScript library for building user interfaces with reusable components. It uses a virtual DOM for efficient updates."},
	{"how to use hooks",
		"React Hooks are functions that let you use state and other React features in functional components. Common hooks are useState, useEffect, and useContext."},
	{"what is typescript",
		"TypeScript is a superset of JavaScript that adds static typing. It helps catch errors during development and improves code quality."},
	{"how to study effectively",
		"Study tips: 1) Create a schedule, 2) Take breaks, 3) Use active recall, 4) Teach others, 5) Practice problems, 6) Review regularly."},
	{"what is html",
		"HTML (HyperText Markup Language) is the standard markup language for creating web pages. It provides structure and content to websites."},
	{"what is css",
		"CSS (Cascading Style Sheets) is used to style and layout web pages. It controls colors, fonts, spacing, and responsive design."},
	{"how to debug code",
		"Debugging tips: 1) Read error messages, 2) Use console.log(), 3) Use browser DevTools, 4) Check variable values, 5) Test in parts."},
	{"what is database",
		"A database is an organized collection of structured data stored electronically. Common types include relational (SQL) and NoSQL databases."},
	{"study tips",
		"Effective study strategies: Break content into chunks, use spaced repetition, take notes, create flashcards, discuss with peers, and practice problems."},
	{"how to improve focus",
		"Focus improvement: Find a quiet place, eliminate distractions, use the Pomodoro technique, stay hydrated, exercise, and get enough sleep."},
}

const (
	helpResponse = "I can help you with study materials, answer questions about programming, " +
		"web development, databases, and provide study tips. Feel free to ask me anything!"
	courseResponse = "I can assist with course content, help you understand concepts, suggest " +
		"study resources, and answer subject-related questions. What course are you studying?"
	assignmentResponse = "For assignments and projects, I can help you understand requirements, " +
		"suggest approaches, and debug code. What's your assignment about?"
	fallbackResponse = "That's an interesting question! I don't have a specific answer in my " +
		"knowledge base yet. Try asking about: React, TypeScript, HTML, CSS, Databases, Study Tips, " +
		"Debugging, or how to improve your focus. You can also connect with alumni mentors on the platform!"
)

// Respond maps free text to a reply. Pure and deterministic: same input,
// same output, no state, no external call.
func Respond(question string) string {
	q := core.CleanString(question, true /* lower */)

	// exact or close match: symmetric substring test, first rule wins
	for _, r := range knowledgeBase {
		if strings.Contains(q, r.key) || strings.Contains(r.key, q) {
			return r.answer
		}
	}

	// fallback keyword groups, in order
	if containsAny(q, "help", "hi", "hello") {
		return helpResponse
	}
	if strings.Contains(q, "course") {
		return courseResponse
	}
	if containsAny(q, "assignment", "project") {
		return assignmentResponse
	}

	return fallbackResponse
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
