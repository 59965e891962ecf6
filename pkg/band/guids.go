package band

import "github.com/google/uuid"

// Well-known service identifiers.
var (
	// PushServiceGUID is the device's push notification service.
	PushServiceGUID = uuid.MustParse("d8895bfd-0461-400d-bd52-dbe2a3c33021")

	// BandAppIOSGUID is the iOS companion application.
	BandAppIOSGUID = uuid.MustParse("090fa552-5e0c-a24d-803b-af536cf97da3")
)
