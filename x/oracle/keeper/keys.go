package keeper

import (
	"encoding/binary"

	"github.com/atlas-protocol/atlas/x/oracle/types"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// CurrencyKeyPrefix is the prefix for currency tree node keys
	CurrencyKeyPrefix = []byte{0x02}

	// FeedKeyPrefix is the prefix for raw feeder submission keys
	FeedKeyPrefix = []byte{0x03}

	// AlarmKeyPrefix is the prefix for alarm store keys
	AlarmKeyPrefix = []byte{0x04}

	// AlarmCountKey is the key for the next alarm ID counter
	AlarmCountKey = []byte{0x05}

	// AlarmByOwnerKeyPrefix is the prefix for indexing alarms by owner
	AlarmByOwnerKeyPrefix = []byte{0x06}
)

// keySeparator delimits variable-length segments. Symbols and bech32
// addresses never contain a zero byte.
const keySeparator = byte(0x00)

// CurrencyKey returns the store key for a currency by symbol
func CurrencyKey(symbol string) []byte {
	return append(CurrencyKeyPrefix, []byte(symbol)...)
}

// FeedPairPrefix returns the iteration prefix for all submissions on a pair
func FeedPairPrefix(pair types.Pair) []byte {
	key := append(FeedKeyPrefix, []byte(pair.Base)...)
	key = append(key, keySeparator)
	key = append(key, []byte(pair.Quote)...)
	return append(key, keySeparator)
}

// FeedKey returns the store key for one feeder's submission on a pair
func FeedKey(pair types.Pair, feeder string) []byte {
	return append(FeedPairPrefix(pair), []byte(feeder)...)
}

// AlarmKey returns the store key for an alarm by ID
func AlarmKey(alarmID uint64) []byte {
	idBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(idBytes, alarmID)
	return append(AlarmKeyPrefix, idBytes...)
}

// AlarmByOwnerPrefix returns the iteration prefix for one owner's alarms
func AlarmByOwnerPrefix(owner string) []byte {
	key := append(AlarmByOwnerKeyPrefix, []byte(owner)...)
	return append(key, keySeparator)
}

// AlarmByOwnerKey returns the owner index key for an alarm
func AlarmByOwnerKey(owner string, alarmID uint64) []byte {
	idBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(idBytes, alarmID)
	return append(AlarmByOwnerPrefix(owner), idBytes...)
}

// AlarmIDFromOwnerKey extracts the alarm ID from an owner index key suffix
func AlarmIDFromOwnerKey(suffix []byte) uint64 {
	if len(suffix) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(suffix[len(suffix)-8:])
}
