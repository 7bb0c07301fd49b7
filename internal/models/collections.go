package models

// Collection names are the lowercase of the record type name.
//   - Driver       -> "driver"
//   - Device       -> "device"
//   - HealthRecord -> "healthrecord"
//   - SleepRecord  -> "sleeprecord"
//   - Event        -> "event"
//   - User         -> "user"
const (
	CollectionDriver       = "driver"
	CollectionDevice       = "device"
	CollectionHealthRecord = "healthrecord"
	CollectionSleepRecord  = "sleeprecord"
	CollectionEvent        = "event"
	CollectionUser         = "user"
)
