// Package wire implements the binary frames exchanged on the broadcast
// channel.
//
// A frame is a one-byte header followed by a fixed-size payload:
//
//	0xFF [active_days][hour][minute][seconds]                  alarm, 5 bytes
//	0xFE [hours][minutes][seconds][h_angle][m_angle][s_angle]  clock, 16 bytes
//
// Angles are IEEE-754 float32 values in big-endian order. Alarm ids are
// never put on the wire.
package wire
