package telegram

import "errors"

var errNotTelegramConversation = errors.New("not a telegram conversation")
