package domain

import "strings"

// ChatRule pairs trigger keywords with a canned reply. Rules are evaluated
// in table order against the lowercased message; the first rule with any
// matching keyword wins.
type ChatRule struct {
	Name     string
	Keywords []string
	Reply    string
}

// ChatRules is the scripted assistant's response table.
var ChatRules = []ChatRule{
	{
		Name:     "stress",
		Keywords: []string{"stress", "anxious", "anxiety"},
		Reply:    "I understand you're feeling stressed. Here are some quick techniques:\n\n1. Deep breathing: Try the 4-7-8 technique (inhale 4s, hold 7s, exhale 8s)\n2. Progressive muscle relaxation\n3. Take a short walk outside\n4. Listen to calming music\n\nWould you like me to guide you through a 5-minute meditation?",
	},
	{
		Name:     "sleep",
		Keywords: []string{"sleep", "insomnia"},
		Reply:    "Good sleep is crucial for wellness! Here are my recommendations:\n\n- Maintain a consistent sleep schedule\n- Create a relaxing bedtime routine\n- Limit screen time 1 hour before bed\n- Keep your bedroom cool (65-68F)\n\nWould you like personalized sleep improvement tips?",
	},
	{
		Name:     "nutrition",
		Keywords: []string{"food", "meal", "eat", "nutrition"},
		Reply:    "Great question about nutrition! For optimal wellness, focus on:\n\n- Whole foods and vegetables\n- Healthy fats (avocado, nuts, olive oil)\n- Lean proteins (fish, chicken, legumes)\n- Stay hydrated (8+ glasses of water)\n\nWould you like a sample meal plan?",
	},
	{
		Name:     "exercise",
		Keywords: []string{"exercise", "workout", "fitness"},
		Reply:    "Let's get moving! A balanced week looks like:\n\n- Cardio: 150 min/week moderate activity\n- Strength: 2-3 sessions per week\n- Flexibility: daily stretching\n\nWant to see a personalized exercise plan?",
	},
	{
		Name:     "hydration",
		Keywords: []string{"water", "hydration", "drink"},
		Reply:    "Hydration is key! Benefits of proper hydration:\n\n- Better energy levels\n- Improved focus\n- Healthier skin\n- Better digestion\n\nI can send you reminders throughout the day. Would you like that?",
	},
	{
		Name:     "weight",
		Keywords: []string{"weight", "lose"},
		Reply:    "Healthy weight management is about sustainable habits, not quick fixes.\n\nKey principles:\n- Track your calories mindfully\n- Practice portion control\n- Eat regularly (don't skip meals)\n- Stay active daily\n- Get adequate sleep",
	},
	{
		Name:     "mood",
		Keywords: []string{"mood", "feeling", "happy", "sad"},
		Reply:    "Thank you for sharing how you're feeling. Emotional wellness is just as important as physical health.\n\nActivities that boost your mood:\n- Spend time with loved ones\n- Exercise releases endorphins\n- Practice gratitude journaling\n- Get sunlight exposure\n\nWould you like to do a mood journaling session now?",
	},
}

// ChatFallbackReply is returned when no rule matches.
const ChatFallbackReply = "I'm here to help with your wellness journey! I can assist with:\n\n- Nutrition & meal planning\n- Fitness & exercise guidance\n- Sleep optimization\n- Mental health support\n- Hydration tracking\n- Progress analysis\n\nFeel free to ask me anything!"

// ReplyTo evaluates the rule table against message and returns the reply
// plus the name of the matched rule ("" on fallback). Pure function, no I/O.
func ReplyTo(message string) (reply string, matchedRule string) {
	lower := strings.ToLower(message)
	for _, rule := range ChatRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Reply, rule.Name
			}
		}
	}
	return ChatFallbackReply, ""
}
