// Package alarm implements the gRPC transport of the alarm management API.
//
// It exposes list, upsert and delete over a provided business-service
// interface. Service descriptors and client stubs are written by hand and
// messages use the JSON codec from package codec.
package alarm
