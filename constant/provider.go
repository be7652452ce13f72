package constant

// Provider endpoints and host names. All of them can be overridden through configuration.
const (
	ProviderHost      = "youtube.com"
	ProviderShortHost = "youtu.be"
	InfoEndpoint      = "https://www.youtube.com/get_video_info"
)

// InfoQueryTemplate is appended to the info endpoint.
// Arguments: video id, el field (empty or "&el=value"), language code.
const InfoQueryTemplate = "?video_id=%s%s&ps=default&eurl=&gl=US&hl=%s"

// Field names of the video info response.
const (
	FieldStreamMap       = "url_encoded_fmt_stream_map"
	FieldAdaptiveFormats = "adaptive_fmts"
	FieldReason          = "reason"
	FieldTitle           = "title"
	FieldAuthor          = "author"
	FieldLengthSeconds   = "length_seconds"
	FieldViewCount       = "view_count"
)

// Field names of a single stream descriptor.
const (
	StreamType         = "type"
	StreamURL          = "url"
	StreamSig          = "sig"
	StreamItag         = "itag"
	StreamQuality      = "quality"
	StreamFallbackHost = "fallback_host"
	StreamSignature    = "signature"
)
