package apitype

// Command is a marker for messages sent through the event broker.
type Command interface{}
