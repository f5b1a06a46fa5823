package peerfilter

// Enumerated literal sets behind the classification rules. They encode
// observed real-world abuse signatures and go stale as clients rebrand;
// keep them here, versioned with the code, rather than scattered through
// the rule logic.

// BadClientCodes are peer-id signature codes of clients that download from
// swarms while uploading little or nothing back. XL/SD/XF/QD/BN/DL are
// Thunder-family and rebranded regional downloaders; TS/DT/HP are
// torrent-speedup tools.
var BadClientCodes = []string{"XL", "SD", "XF", "QD", "BN", "DL", "TS", "DT", "HP"}

// fakeClientPattern matches client strings that are clearly spoofed: a bare
// dotted-quad where a client name belongs, or the known fake cacao_torrent.
const fakeClientPattern = `\d+.\d+.\d+.\d+|cacao_torrent`

// ConsumeClientSignatures are traffic-consumption clients reported from one
// region; matched case-insensitively against the whole client string.
// GT0003 is hard to tell apart from a legitimate client, so only dt/torrent
// and the Taipei-torrent case are covered for now.
var ConsumeClientSignatures = []string{
	`(dt|hp|xm)/torrent`,
	`Gopeed dev`,
	`Rain 0.0.0`,
	`Taipei-torrent( dev)?`,
}

// consumeClientCountry gates the traffic-consumption check to the region
// these clients have actually been observed from.
const consumeClientCountry = "CN"

// Unknown-peer rule literals.
const (
	unknownClientMarker  = "Unknown"
	unknownClientCountry = "CN"
)

// Offline-downloader rule literals. 115 offline servers announce as
// Transmission from high ports; old data, may be out of date.
const (
	offlinePortFloor      = 65000
	offlineSpoofedClient  = "Transmission"
	offlineSpoofedCountry = "CN"
)

// OfflineLibtorrentVersions are libtorrent version tokens announced by
// commercial offline downloaders: PikPak rents Worldstream servers and
// announces as LT1220/LT2070, and Xunlei appears to use LT2070 too.
var OfflineLibtorrentVersions = []string{"1220", "2070"}

// OfflineDownloaderCountries are where those downloaders' servers sit.
var OfflineDownloaderCountries = []string{"NL", "CN"}

// PlayerClientNames are media players that stream from swarms without
// seeding back.
var PlayerClientNames = []string{"StellarPlayer", "Elementum"}

// playerIDPattern matches the peer-id signature codes of those players,
// including their version-number ranges.
const playerIDPattern = `UW\w{4}|SP(([0-2]\d{3})|(3[0-5]\d{2}))`
