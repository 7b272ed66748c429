package telegram

// WebhookPath is where Telegram posts updates.
const WebhookPath = "/webhook/telegram"

// conversationPrefix marks conversation ids owned by this channel.
const conversationPrefix = "tg:"

const (
	msgWelcome = "👋 Welcome to McCrew Assistant!\n\n" +
		"Ask about shifts, pay, breaks and store policies.\n" +
		"Set your Employee ID first with /id <your id>, then try /shift or /help."
	msgIDUsage   = "Usage: /id <employee id>, e.g. /id 1234"
	msgIDSaved   = "Employee ID saved: %s"
	msgIDFailed  = "Sorry, I couldn't save your Employee ID. Please try again."
	msgFailed    = "Sorry, something went wrong handling your message. Please try again."
	msgNoMessage = "Send me a text message and I'll help."
)
