package topic

// Fixed refusal replies.
const (
	CodingRefusal   = "I can’t help with coding or developer tasks here. I’m focused on McDonald’s store operations, shifts, pay, training, and policies. Ask me about those or just say hi. 🍟"
	OffTopicRefusal = "I’m here for McDonald’s crew topics: shifts, rota, pay, breaks, policies, training, food safety, and day-to-day store questions. Try asking about one of those. 😊"
)

// operationsKeywords cover store work: rota, pay, policy, training and safety.
var operationsKeywords = []string{
	"mcdonald", "mccrew", "crew", "store", "shift", "rota", "schedule", "week",
	"pay", "payday", "paycheck", "wage", "salary", "overtime", "break", "uniform",
	"policy", "policies", "rules", "late", "lateness", "allergen", "food safety",
	"handwash", "hygiene", "chemical", "cleaning", "fryer", "drive-thru", "drive thru",
	"manager", "training", "quiz", "swap", "swaps", "clock", "timeclock",
	"hold time", "station", "till", "kitchen", "grill",
}

// menuKeywords cover the food itself.
var menuKeywords = []string{
	"burger", "fries", "nugget", "big mac", "mcflurry", "mcmuffin", "mcchicken",
	"quarter pounder", "happy meal", "hash brown", "milkshake", "sundae", "menu",
	"ingredient", "sauce", "bun", "patty", "pickle", "lettuce", "cheese",
}
