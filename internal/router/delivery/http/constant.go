package http

// conversationPrefix namespaces browser conversations so they can never
// address another channel's session, such as "tg:<chatID>".
const conversationPrefix = "web:"
