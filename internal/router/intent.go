package router

import "regexp"

// intent maps a free-text phrasing onto a read-only command.
type intent struct {
	re      *regexp.Regexp
	command string
}

// Checked in order. Next payday goes before pay so "payday" is not read as
// a request for today's estimate.
var intents = []intent{
	{regexp.MustCompile(`(?i)\b(shift|rota|schedule)s?\b`), "/shift"},
	{regexp.MustCompile(`(?i)\b(next pay(check|day)?|payday|paydays)\b`), "/nextpay"},
	{regexp.MustCompile(`(?i)\b(pay|paycheck|wages?|salary|how much (i|did i) (make|made)|today['’]?s pay)\b`), "/pay"},
}

var employeeIDRe = regexp.MustCompile(`\b\d{3,6}\b`)

// matchIntent returns the command line for msg, carrying an employee id
// written in the message as its argument.
func matchIntent(msg string) (string, bool) {
	for _, in := range intents {
		if !in.re.MatchString(msg) {
			continue
		}
		if id := employeeIDRe.FindString(msg); id != "" && in.command != "/nextpay" {
			return in.command + " " + id, true
		}
		return in.command, true
	}
	return "", false
}
