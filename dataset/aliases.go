package dataset

// Accepted spellings per logical field, first match wins. Older exports used
// snake_case or "UI" suffixes; newer ones are camelCase.
var (
	clusterIPsKeys        = []string{"ips"}
	clusterIPKeys         = []string{"ip", "ipAddress"}
	clusterValidatorsKeys = []string{"validators", "validators_info", "validatorsInfo"}
	clusterTotalStakeKeys = []string{"totalStakeUi", "totalStakeUI", "total_stake_ui", "total_stakeUI"}
	clusterStakedKeys     = []string{"stakedIdentities", "staked_identities"}
	clusterIdentitiesKeys = []string{"identities"}

	identityPubkeyKeys    = []string{"pubkey", "identityPubkey", "identity_pubkey"}
	identityIsStakedKeys  = []string{"isStaked", "is_staked"}
	identityTimestampKeys = []string{"timestamp"}

	validatorIdentityKeys       = []string{"identityPubkey", "identity_pubkey"}
	validatorVoteAccountKeys    = []string{"voteAccountPubkey", "vote_account_pubkey"}
	validatorStakeUiKeys        = []string{"activatedStakeUi", "activatedStakeUI", "activated_stake_ui"}
	validatorStakeLamportsKeys  = []string{"activatedStake", "activated_stake"}
	validatorJitoPoolKeys       = []string{"jitoStakepool", "jito_stakepool"}
	validatorJitoStakeUiKeys    = []string{"jitoStakeUi", "jitoStakeUI", "jito_stake_ui"}
	validatorSfdpParticipantKey = []string{"sfdpParticipant", "sfdp_participant"}
	validatorSfdpStatusKeys     = []string{"sfdpStatus", "sfdp_status"}
	validatorCommissionKeys     = []string{"commission"}
	validatorVersionKeys        = []string{"version"}
	validatorDelinquentKeys     = []string{"delinquent"}
	validatorSkipRateKeys       = []string{"skipRate", "skip_rate"}
)

// lamportsPerSol converts raw stake into UI units
const lamportsPerSol = 1e9

// sfdpApprovedStatus is the status string that means participation when no flag is present
const sfdpApprovedStatus = "Approved"
