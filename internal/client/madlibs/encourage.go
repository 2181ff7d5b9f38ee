package madlibs

// Encouragement returns the playful nudge shown next to the free-form
// character counter for a text of the given length.
func Encouragement(n int) string {
	switch {
	case n <= 50:
		return "Just getting warmed up! Keep going!"
	case n <= 100:
		return "Nice start! Tell me more!"
	case n <= 200:
		return "Now we're talking!"
	case n <= 300:
		return "This is great! You're on fire!"
	case n <= 500:
		return "Wow, thanks for being so detailed!"
	default:
		return "Okay you can stop now... just kidding! This is gold!"
	}
}
