// Package timezone pins the application to one named IANA zone.
//
// Every "today" computation in the booking views runs against this zone,
// never against the host's local time, so a dashboard deployed anywhere
// shows the operating region's calendar day. The zone is configured via
// the APP_TIMEZONE environment variable and initialized when the package
// is imported; unknown or missing names fall back to UTC.
//
// Classification code that needs an injected clock for testing should take
// a time.Time plus *time.Location and use GetLocation() only at the edges.
package timezone
