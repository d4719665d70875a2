package models

// GatewayState is the wallet lifecycle state of the exchange gateway.
//
// Idle is entered when no wallet identity is stored. Provisioning covers an
// in-flight create. BackupDisclosure is the only state in which secret
// credentials are readable, and Ready is the steady state.
type GatewayState string

const (
	GatewayStateIdle             GatewayState = "idle"
	GatewayStateProvisioning     GatewayState = "provisioning"
	GatewayStateBackupDisclosure GatewayState = "backup_disclosure"
	GatewayStateReady            GatewayState = "ready"
)

func (s GatewayState) String() string {
	return string(s)
}
