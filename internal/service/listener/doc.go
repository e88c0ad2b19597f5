// Package listener implements the subscriber side of the broadcast.
//
// Listen decodes every frame and hands it to a Dispatcher. The clock-listener
// command uses it to print events as JSON lines or YAML documents.
package listener
