// Package alarm contains the core domain types of the alarm business logic.
//
// It defines ActiveDays (the weekday bitmask), Alarm (a persisted alarm
// definition) and the evaluator that decides whether an alarm rings at a
// given moment. Actor identifies who changed an alarm for the audit log.
package alarm
