package router

// Log prefixes
const (
	LogPrefixHandle = "internal.router.Handle"
	LogPrefixBreak  = "internal.router.break"
)

// Fixed replies
const (
	ReplyGatewayFailure   = "Sorry, the AI connection failed. Please try again in a moment."
	ReplyNeedEmployeeID   = "Add your Employee ID first (left panel)."
	ReplyUnknownEmployee  = "No employee with ID %s in the demo data."
	ReplyNoShiftToday     = "%s: No shift found for today (%s). Ask a manager or check your scheduling app."
	ReplyNoPayToday       = "%s: No shift today (%s)."
	ReplyNoWeekShifts     = "%s: No shifts planned between %s and %s."
	ReplyPayNote          = "Demo estimate only. Actual pay depends on timeclock, premiums, breaks, taxes, etc."
	ReplyStoreError       = "Sorry, I couldn't read the crew data just now. Please try again."
	ReplyNeedConversation = "This needs an ongoing conversation. Please try again from the chat."

	HelpText = `I can help with:
/shift [id] – see today’s shift
/week [id] – your shifts for the next 7 days
/pay [id] – estimate today’s pay
/nextpay – next paycheck date
/policy <term> – look up a store policy
/quiz start – quick training quiz (/quit to stop)
/break <minutes> – start a break timer (/cancelbreak to stop)
/swap <date> <HH:MM-HH:MM> <note> – request a shift swap
/swaps – latest swap requests
Or just ask: “What is the uniform policy?”, “How to set up fry station?”`
)

// Usage texts
const (
	UsagePolicy = "Usage: /policy <term>, e.g. /policy uniform"
	UsageQuiz   = "Type /quiz start to begin the training quiz."
	UsageBreak  = "Usage: /break <minutes>, a whole number from 1 to 60."
	UsageSwap   = "Usage: /swap <YYYY-MM-DD> <HH:MM-HH:MM> <note>, e.g. /swap 2024-05-10 09:00-17:00 dentist"
)

// Break replies
const (
	ReplyBreakStarted   = "Break started: %d min. Ends at %s."
	ReplyBreakCancelled = "Break timer cancelled."
	ReplyNoBreak        = "No break timer is running."
	NotifyBreakOver     = "Break over. Time to head back to your station."
	MaxBreakMinutes     = 60
)

// Swap replies
const (
	ReplySwapLogged = "Swap request logged: %s %s–%s%s. A manager will review it."
	ReplyNoSwaps    = "No swap requests yet."
	ReplySwapsTitle = "Latest swap requests:"
)

// Quiz replies
const (
	ReplyQuizStarted  = "Quiz started! Answer with A, B or C. Type /quit to stop."
	ReplyQuizCorrect  = "✅ Correct!"
	ReplyQuizWrong    = "❌ Not quite. The answer is %s."
	ReplyQuizInvalid  = "Please answer A, B or C (or /quit to stop)."
	ReplyQuizComplete = "Quiz complete! You scored %d/%d."
	ReplyQuizQuit     = "Quiz ended. You scored %d/%d."
	ReplyNoQuiz       = "No quiz is running."
)
