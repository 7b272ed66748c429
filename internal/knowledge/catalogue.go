package knowledge

import "mccrew-ai/internal/model"

// entries is the built-in crew handbook, in display order.
var entries = []model.KnowledgeEntry{
	{
		Topic:    "Uniform Policy",
		Keywords: []string{"uniform", "dress", "appearance"},
		Answer: "• Clean full uniform, name badge visible.\n• No smart watches/rings by food prep.\n" +
			"• Hair tied, beard nets where required.\n• Black, non-slip shoes.\n• Follow local store/brand standards.",
	},
	{
		Topic:    "Lateness Policy",
		Keywords: []string{"late", "lateness", "timekeeping"},
		Answer: "• Call the store/manager ASAP if running late.\n• Arrivals >5 min late may be logged.\n" +
			"• 3 lateness events in a period triggers a review.\n• Repeated issues may affect scheduling.",
	},
	{
		Topic:    "Breaks",
		Keywords: []string{"break", "rest", "meal"},
		Answer: "• UK guidance: 20-min uninterrupted break if working >6 hours.\n" +
			"• Ask a manager to schedule the break considering rush periods.\n• No eating in customer area while on duty.",
	},
	{
		Topic:    "Food Safety / Allergens",
		Keywords: []string{"allergen", "safety", "food", "ccp"},
		Answer: "• Strict handwashing between tasks.\n• Keep raw/ready-to-eat separate.\n" +
			"• Label and hold times must be followed.\n• For allergen queries, always use official charts & confirm with manager.",
	},
	{
		Topic:    "Cleaning Chemicals",
		Keywords: []string{"chemical", "clean", "safety", "msds"},
		Answer:   "• Wear PPE.\n• Never mix chemicals.\n• Follow dilution/soak times on label.\n• Store securely; report spills immediately.",
	},
	{
		Topic:    "Fry Station — Setup",
		Keywords: []string{"fry", "fries", "vat", "setup"},
		Answer: "• Check oil level & temperature (target per spec).\n• Skim oil, insert baskets, confirm timers.\n" +
			"• Use correct cook times & salting procedure.\n• Filter oil per schedule; record in log.",
	},
	{
		Topic:    "Sandwich Build — Big Mac",
		Keywords: []string{"big mac", "build", "assemble", "burger"},
		Answer: "• Toast 3-part bun; sauce + onions + lettuce; cheese + patty on heel; " +
			"club + sauce + lettuce + pickles; top patty; crown. Wrap per spec.",
	},
	{
		Topic:    "Training & e-Learning",
		Keywords: []string{"train", "training", "learn", "module"},
		Answer: "• Follow station checklists.\n• Shadow a trained crew.\n" +
			"• Complete e-learning modules & sign-offs.\n• Ask manager for station certification.",
	},
}
