// Package kernel provides the shared value objects of the ordering domain.
//
// The package includes:
//   - UUID: identifier for orders, notifications and actors
//   - DeliveryDate: a calendar date without time of day
//   - TimeSlot: the closed set of delivery slots (morning, afternoon, evening)
//   - DeliveryWindow: a (DeliveryDate, TimeSlot) pair as requested, suggested or agreed
//
// Values are immutable and must be created through their constructors; zero values
// fail Validate.
package kernel
