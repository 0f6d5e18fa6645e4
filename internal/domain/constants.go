package domain

import "time"

const (
	ShapeTypeCard   = "card"
	ShapeTypeIframe = "iframe"
)

const (
	DefaultCardWidth  = 100
	DefaultCardHeight = 100

	DefaultIframeURL     = "https://www.baidu.com/"
	DefaultIframeWidth   = 1250
	DefaultIframeHeight  = 726
	DefaultIframeSandbox = "allow-scripts allow-same-origin"
)

const (
	DefaultRetryMaxAttempts    = 3
	DefaultRetryInitialDelayMs = 100
	DefaultRetryMaxDelaySec    = 30
	DefaultRetryMultiplier     = 2.0
)

var (
	DefaultRetryInitialDelay = DefaultRetryInitialDelayMs * time.Millisecond
	DefaultRetryMaxDelay     = DefaultRetryMaxDelaySec * time.Second

	DefaultPendingDelay = 300 * time.Millisecond
	DefaultZoomDuration = 618 * time.Millisecond
)
