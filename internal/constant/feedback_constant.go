package constant

// Spoken phrases of the feedback channel. The primary consumer is audio-only,
// so every outcome has one of these.
const (
	AnnounceProductMode         = "Switched to product recognition mode."
	AnnounceCurrencyMode        = "Switched to currency detection mode."
	AnnounceCurrencyModelLoaded = " Currency model loaded successfully."
	AnnounceInvalidMode         = "Invalid mode selection"
	AnnounceModeError           = "Error changing mode"
	AnnounceNoMatch             = "No product match found"
	AnnounceBadAudio            = "Could not understand audio"
	AnnounceProcessingError     = "An error occurred while processing"
	AnnounceNoCurrency          = "No currency detected in the image."

	// Format strings; keep the argument order in sync with the callers.
	AnnounceCurrencyHeldFmt  = "You are holding %s in your hand."
	AnnounceLocationFmt      = "%s is located at position %s in row %s."
	AnnounceNotInDatabaseFmt = "Could not find %s in the database."
	AnnounceLookupErrorFmt   = "Error. %s while looking up %s."
	AnnounceLookupOfflineFmt = "Failed to connect to database service. Error: %v"
)
