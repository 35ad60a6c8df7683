package ethereum

// messagingABI is the ABI of the permissioned messaging contract: a
// `send` extrinsic gated by per-recipient blacklist/whitelist, plus
// `updateWhitelist`/`updateBlacklist` for callers managing their own
// lists, and the events the gate emits.
const messagingABI = `[
	{
		"type": "function",
		"name": "send",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "recipient", "type": "address"},
			{"name": "contentId", "type": "string"}
		],
		"outputs": []
	},
	{
		"type": "function",
		"name": "updateWhitelist",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "add", "type": "bool"},
			{"name": "account", "type": "address"}
		],
		"outputs": []
	},
	{
		"type": "function",
		"name": "updateBlacklist",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "add", "type": "bool"},
			{"name": "account", "type": "address"}
		],
		"outputs": []
	},
	{
		"type": "event",
		"name": "MessageSent",
		"inputs": [
			{"name": "from", "type": "address", "indexed": true},
			{"name": "to", "type": "address", "indexed": true},
			{"name": "contentId", "type": "string", "indexed": false}
		],
		"anonymous": false
	},
	{
		"type": "event",
		"name": "AddressInBlacklist",
		"inputs": [
			{"name": "from", "type": "address", "indexed": true},
			{"name": "to", "type": "address", "indexed": true}
		],
		"anonymous": false
	},
	{
		"type": "event",
		"name": "AddressNotInWhitelist",
		"inputs": [
			{"name": "from", "type": "address", "indexed": true},
			{"name": "to", "type": "address", "indexed": true}
		],
		"anonymous": false
	},
	{
		"type": "event",
		"name": "BalanceTransfer",
		"inputs": [
			{"name": "from", "type": "address", "indexed": true},
			{"name": "to", "type": "address", "indexed": true},
			{"name": "amount", "type": "uint256", "indexed": false}
		],
		"anonymous": false
	}
]`
