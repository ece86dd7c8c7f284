package checkout

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

type Notice struct {
	Kind    NoticeKind
	Message string
}

const (
	MsgCaptureSucceeded   = "Payment Captured Successfully!"
	MsgCaptureFailed      = "Payment Capture Failed!"
	MsgInvalidAmount      = "Please enter a positive amount."
	MsgInvalidCurrency    = "Please choose a supported currency."
	MsgInitiationFailed   = "Could not start the payment. Please try again."
	MsgApprovalLinkAbsent = "PayPal did not return an approval link."
)
