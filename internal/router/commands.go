package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mccrew-ai/internal/crew"
	"mccrew-ai/internal/model"
)

type commandFunc func(r *TopicRouter, ctx context.Context, sess *model.Session, employeeID string, args []string) string

var commands = map[string]commandFunc{
	"/help":        (*TopicRouter).cmdHelp,
	"/shift":       (*TopicRouter).cmdShift,
	"/week":        (*TopicRouter).cmdWeek,
	"/pay":         (*TopicRouter).cmdPay,
	"/nextpay":     (*TopicRouter).cmdNextPay,
	"/policy":      (*TopicRouter).cmdPolicy,
	"/quiz":        (*TopicRouter).cmdQuiz,
	"/quit":        (*TopicRouter).cmdQuit,
	"/break":       (*TopicRouter).cmdBreak,
	"/cancelbreak": (*TopicRouter).cmdCancelBreak,
	"/swap":        (*TopicRouter).cmdSwap,
	"/swaps":       (*TopicRouter).cmdSwaps,
}

// actionCommands may be triggered by a gateway action. They only read data.
var actionCommands = map[string]bool{
	"/help":    true,
	"/shift":   true,
	"/week":    true,
	"/pay":     true,
	"/nextpay": true,
	"/policy":  true,
	"/swaps":   true,
}

// dispatch runs a slash command. Unknown commands get the help text.
func (r *TopicRouter) dispatch(ctx context.Context, sess *model.Session, employeeID, msg string) string {
	fields := strings.Fields(msg)
	if len(fields) == 0 {
		return HelpText
	}
	name := strings.ToLower(fields[0])
	// Telegram appends the bot name in groups: /shift@McCrewBot
	if at := strings.IndexByte(name, '@'); at > 0 {
		name = name[:at]
	}

	cmd, ok := commands[name]
	if !ok {
		return HelpText
	}
	return cmd(r, ctx, sess, employeeID, fields[1:])
}

func normalizeAction(action string) string {
	action = strings.TrimSpace(action)
	if action != "" && !strings.HasPrefix(action, "/") {
		action = "/" + action
	}
	return action
}

func isActionCommand(action string) bool {
	fields := strings.Fields(action)
	return len(fields) > 0 && actionCommands[strings.ToLower(fields[0])]
}

func (r *TopicRouter) cmdHelp(ctx context.Context, sess *model.Session, employeeID string, args []string) string {
	return HelpText
}

// resolveEmployee prefers the command argument over the stored id.
func resolveEmployee(employeeID string, args []string) string {
	if len(args) > 0 {
		return strings.TrimSpace(args[0])
	}
	return employeeID
}

// employeeError turns a lookup failure into a reply.
func (r *TopicRouter) employeeError(ctx context.Context, id string, err error) string {
	switch {
	case errors.Is(err, crew.ErrEmployeeIDRequired):
		return ReplyNeedEmployeeID
	case errors.Is(err, crew.ErrEmployeeNotFound):
		return fmt.Sprintf(ReplyUnknownEmployee, id)
	default:
		r.l.Errorf(ctx, "%s: crew: %v", LogPrefixHandle, err)
		return ReplyStoreError
	}
}

func (r *TopicRouter) cmdShift(ctx context.Context, sess *model.Session, employeeID string, args []string) string {
	id := resolveEmployee(employeeID, args)
	if id == "" {
		return ReplyNeedEmployeeID
	}
	out, err := r.crew.TodayShift(ctx, id)
	if err != nil {
		return r.employeeError(ctx, id, err)
	}
	if out.Shift == nil {
		return fmt.Sprintf(ReplyNoShiftToday, out.Employee.Name, out.Today)
	}
	return fmt.Sprintf("%s — Today’s Shift\n%s", out.Employee.Name, formatShift(*out.Shift, out.Hours))
}

func (r *TopicRouter) cmdWeek(ctx context.Context, sess *model.Session, employeeID string, args []string) string {
	id := resolveEmployee(employeeID, args)
	if id == "" {
		return ReplyNeedEmployeeID
	}
	out, err := r.crew.WeekShifts(ctx, id)
	if err != nil {
		return r.employeeError(ctx, id, err)
	}
	if len(out.Shifts) == 0 {
		return fmt.Sprintf(ReplyNoWeekShifts, out.Employee.Name, out.From, out.To)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s — Next 7 days (%s to %s)", out.Employee.Name, out.From, out.To)
	for _, s := range out.Shifts {
		sb.WriteString("\n• ")
		sb.WriteString(formatShift(s, shiftHours(s)))
	}
	fmt.Fprintf(&sb, "\nTotal: %s hrs", formatHours(out.TotalHours))
	return sb.String()
}

func (r *TopicRouter) cmdPay(ctx context.Context, sess *model.Session, employeeID string, args []string) string {
	id := resolveEmployee(employeeID, args)
	if id == "" {
		return ReplyNeedEmployeeID
	}
	out, err := r.crew.EstimatePay(ctx, id)
	if err != nil {
		return r.employeeError(ctx, id, err)
	}
	if out.Shift == nil {
		return fmt.Sprintf(ReplyNoPayToday, out.Employee.Name, out.Today)
	}
	return fmt.Sprintf("Estimated Pay for Today\n%s: %s (rate %s/hr, %s hrs)\n%s",
		out.Employee.Name,
		formatMoney(out.Estimate.Total),
		formatMoney(out.Employee.HourlyRate),
		formatHours(out.Estimate.Hours),
		ReplyPayNote,
	)
}

func (r *TopicRouter) cmdNextPay(ctx context.Context, sess *model.Session, employeeID string, args []string) string {
	out, err := r.crew.NextPayday(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: next payday: %v", LogPrefixHandle, err)
		return ReplyStoreError
	}
	return fmt.Sprintf("Next Paycheck\nNext payday: %s • Frequency: %s\nFollowing payday: %s",
		out.NextPayday, out.Frequency, out.Following)
}

func (r *TopicRouter) cmdPolicy(ctx context.Context, sess *model.Session, employeeID string, args []string) string {
	term := strings.TrimSpace(strings.Join(args, " "))
	if term == "" {
		return UsagePolicy
	}
	entry, ok := r.kb.Search(term)
	if !ok {
		return fmt.Sprintf("No policy found for %q. Topics: %s", term, strings.Join(r.kb.Topics(), ", "))
	}
	return formatKnowledge(entry)
}

func (r *TopicRouter) cmdSwap(ctx context.Context, sess *model.Session, employeeID string, args []string) string {
	if len(args) < 2 {
		return UsageSwap
	}
	start, end, ok := strings.Cut(args[1], "-")
	if !ok {
		return UsageSwap
	}

	swap, err := r.crew.CreateSwap(ctx, crew.CreateSwapInput{
		EmployeeID: employeeID,
		Date:       args[0],
		Start:      start,
		End:        end,
		Note:       strings.Join(args[2:], " "),
	})
	if err != nil {
		if errors.Is(err, crew.ErrInvalidSwap) {
			return UsageSwap
		}
		r.l.Errorf(ctx, "%s: create swap: %v", LogPrefixHandle, err)
		return ReplyStoreError
	}

	note := ""
	if swap.Note != "" {
		note = " (" + swap.Note + ")"
	}
	return fmt.Sprintf(ReplySwapLogged, swap.Date, swap.Start, swap.End, note)
}

func (r *TopicRouter) cmdSwaps(ctx context.Context, sess *model.Session, employeeID string, args []string) string {
	swaps, err := r.crew.ListSwaps(ctx, crew.ListSwapsInput{Limit: crew.DefaultSwapLimit})
	if err != nil {
		r.l.Errorf(ctx, "%s: list swaps: %v", LogPrefixHandle, err)
		return ReplyStoreError
	}
	if len(swaps) == 0 {
		return ReplyNoSwaps
	}

	var sb strings.Builder
	sb.WriteString(ReplySwapsTitle)
	for _, s := range swaps {
		fmt.Fprintf(&sb, "\n• %s %s–%s", s.Date, s.Start, s.End)
		if s.EmployeeID != "" {
			fmt.Fprintf(&sb, " [%s]", s.EmployeeID)
		}
		if s.Note != "" {
			fmt.Fprintf(&sb, ": %s", s.Note)
		}
	}
	return sb.String()
}
