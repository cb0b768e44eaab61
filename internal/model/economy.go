package model

import "time"

// StreakStatus is the health of the daily streak.
type StreakStatus string

const (
	StreakActive StreakStatus = "ACTIVE"
	StreakAtRisk StreakStatus = "AT_RISK"
)

// Streak tracks consecutive check-ins and the freeze items that bridge a missed day.
type Streak struct {
	Current     int          `json:"current"`
	LastCheckIn time.Time    `json:"last_check_in"`
	Freezes     int          `json:"freezes"`
	Status      StreakStatus `json:"status"`
}

// RewardEffect is a side effect applied when a reward is redeemed.
type RewardEffect string

const (
	EffectNone         RewardEffect = ""
	EffectStreakFreeze RewardEffect = "STREAK_FREEZE"
)

// Reward is a static catalog item priced in bones.
type Reward struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Cost   int          `json:"cost"`
	Effect RewardEffect `json:"effect,omitempty"`
}

// Task is a plain todo item. It carries no economy semantics.
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// HomeEconomy holds the spendable balance and everything around it.
type HomeEconomy struct {
	BoneBalance int      `json:"bone_balance"`
	Streak      Streak   `json:"streak"`
	Rewards     []Reward `json:"rewards"`
	Tasks       []Task   `json:"tasks"`
}

// InvoiceStatus is the settlement status of a HubInvoice.
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "PAID"
	InvoicePending InvoiceStatus = "PENDING"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
	InvoiceVoid    InvoiceStatus = "VOID"
)

// InvoiceCategorySystem marks invoices created by transaction settlement.
const InvoiceCategorySystem = "SYSTEM"

// ReceiptMetadata is compliance detail carried through to the invoice for display only.
type ReceiptMetadata struct {
	TransactionID   string    `json:"transaction_id"`
	Method          string    `json:"method"`
	AuthCode        string    `json:"auth_code"`
	DeviceSignature string    `json:"device_signature"`
	Timestamp       time.Time `json:"timestamp"`
}

// HubInvoice is a ledger entry recording a settled payment.
type HubInvoice struct {
	ID          string           `json:"id"`
	Target      string           `json:"target"`
	Amount      int              `json:"amount"`
	Status      InvoiceStatus    `json:"status"`
	Date        time.Time        `json:"date"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Receipt     *ReceiptMetadata `json:"receipt,omitempty"`
}

// Toast is the transient cash-back banner. Seq changes on every new toast.
type Toast struct {
	Visible bool   `json:"visible"`
	Message string `json:"message"`
	Amount  int    `json:"amount"`
	Seq     uint64 `json:"seq"`
}
