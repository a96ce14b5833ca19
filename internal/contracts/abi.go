package contracts

// TraderABI covers the Vearn trader methods the backend calls.
const TraderABI = `[
	{
		"type": "function",
		"name": "saveReserveBalance",
		"stateMutability": "nonpayable",
		"inputs": [{"name": "reserveBalance", "type": "uint256"}],
		"outputs": []
	},
	{
		"type": "function",
		"name": "saveConfig",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "triggerBalance", "type": "uint256"},
			{"name": "reserveBalance", "type": "uint256"}
		],
		"outputs": []
	},
	{
		"type": "function",
		"name": "addressToConfig",
		"stateMutability": "view",
		"inputs": [{"name": "", "type": "address"}],
		"outputs": [
			{"name": "triggerBalance", "type": "uint256"},
			{"name": "reserveBalance", "type": "uint256"}
		]
	}
]`

// EnergyABI is the VIP-180 subset of the built-in VTHO contract.
const EnergyABI = `[
	{
		"type": "function",
		"name": "approve",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_spender", "type": "address"},
			{"name": "_value", "type": "uint256"}
		],
		"outputs": [{"name": "success", "type": "bool"}]
	},
	{
		"type": "function",
		"name": "allowance",
		"stateMutability": "view",
		"inputs": [
			{"name": "_owner", "type": "address"},
			{"name": "_spender", "type": "address"}
		],
		"outputs": [{"name": "remaining", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "balanceOf",
		"stateMutability": "view",
		"inputs": [{"name": "_owner", "type": "address"}],
		"outputs": [{"name": "balance", "type": "uint256"}]
	}
]`

// ParamsABI is the getter of the built-in governance params contract.
const ParamsABI = `[
	{
		"type": "function",
		"name": "get",
		"stateMutability": "view",
		"inputs": [{"name": "_key", "type": "bytes32"}],
		"outputs": [{"name": "value", "type": "uint256"}]
	}
]`
