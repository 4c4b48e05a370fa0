package responder

// Recognized command keywords. Matching is done on the lowercased first
// token of the message, so "!STATUS" works too.
const (
	CommandStatus     = "!status"
	CommandIncidents  = "!incidents"
	CommandHeartbeats = "!heartbeats"
)

// Fixed user-facing strings
const (
	statusTitle       = "시스템 상태"
	statusDescription = "현재 모니터링 중인 서비스 상태입니다."

	incidentsTitle       = "인시던트 현황"
	incidentsDescription = "최근 인시던트 목록입니다. (최대 5건)"

	heartbeatsTitle       = "하트비트 현황"
	heartbeatsDescription = "등록된 하트비트 목록입니다. (최대 5건)"

	healthyLabel    = "🟢 정상"
	downLabel       = "🔴 다운"
	unresolvedLabel = "미해결"

	apologyMessage = "⚠️ 상태 정보를 가져오지 못했습니다. 잠시 후 다시 시도해 주세요."
)

// Fixed accent color per command
const (
	statusColor     = 0x2ECC71
	incidentsColor  = 0xE74C3C
	heartbeatsColor = 0x3498DB
)

const (
	// maxListedItems caps incidents and heartbeats to the first 5 items of
	// the fetched page
	maxListedItems = 5

	// maxEmbedFields is Discord's hard limit on fields per embed. Monitors
	// are otherwise uncapped.
	maxEmbedFields = 25
)
