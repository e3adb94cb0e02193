package chain

// VotingABI is the input ABI used to bind the voting organization contract.
const VotingABI = `[{"type":"function","name":"votingOrganizer","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address","internalType":"address"}]},{"type":"function","name":"changeOwner","stateMutability":"nonpayable","inputs":[{"name":"_newOwner","type":"address","internalType":"address"}],"outputs":[]},{"type":"function","name":"createGroup","stateMutability":"nonpayable","inputs":[{"name":"_name","type":"string","internalType":"string"},{"name":"_image","type":"string","internalType":"string"},{"name":"_ipfs","type":"string","internalType":"string"},{"name":"_requiresRegisteredVoters","type":"bool","internalType":"bool"},{"name":"_startTime","type":"uint256","internalType":"uint256"},{"name":"_endTime","type":"uint256","internalType":"uint256"},{"name":"_description","type":"string","internalType":"string"}],"outputs":[]},{"type":"function","name":"deleteGroup","stateMutability":"nonpayable","inputs":[{"name":"_groupId","type":"uint256","internalType":"uint256"}],"outputs":[]},{"type":"function","name":"addCandidateToGroup","stateMutability":"nonpayable","inputs":[{"name":"_groupId","type":"uint256","internalType":"uint256"},{"name":"_candidateAddress","type":"address","internalType":"address"}],"outputs":[]},{"type":"function","name":"deleteCandidateFromGroup","stateMutability":"nonpayable","inputs":[{"name":"_groupId","type":"uint256","internalType":"uint256"},{"name":"_candidateAddress","type":"address","internalType":"address"}],"outputs":[]},{"type":"function","name":"createCandidate","stateMutability":"nonpayable","inputs":[{"name":"_name","type":"string","internalType":"string"},{"name":"_candidateAddress","type":"address","internalType":"address"},{"name":"_age","type":"uint256","internalType":"uint256"},{"name":"_image","type":"string","internalType":"string"},{"name":"_ipfs","type":"string","internalType":"string"}],"outputs":[]},{"type":"function","name":"addVoterByApproval","stateMutability":"nonpayable","inputs":[{"name":"_voterAddress","type":"address","internalType":"address"}],"outputs":[]},{"type":"function","name":"addCandidateByApproval","stateMutability":"nonpayable","inputs":[{"name":"_candidateAddress","type":"address","internalType":"address"}],"outputs":[]},{"type":"function","name":"applyToBeVoter","stateMutability":"nonpayable","inputs":[{"name":"_name","type":"string","internalType":"string"},{"name":"_voterAddress","type":"address","internalType":"address"},{"name":"_age","type":"uint256","internalType":"uint256"},{"name":"_image","type":"string","internalType":"string"},{"name":"_ipfs","type":"string","internalType":"string"}],"outputs":[]},{"type":"function","name":"applyToBeCandidate","stateMutability":"nonpayable","inputs":[{"name":"_name","type":"string","internalType":"string"},{"name":"_candidateAddress","type":"address","internalType":"address"},{"name":"_age","type":"uint256","internalType":"uint256"},{"name":"_image","type":"string","internalType":"string"},{"name":"_ipfs","type":"string","internalType":"string"}],"outputs":[]},{"type":"function","name":"updateVoterImage","stateMutability":"nonpayable","inputs":[{"name":"_image","type":"string","internalType":"string"},{"name":"_ipfs","type":"string","internalType":"string"}],"outputs":[]},{"type":"function","name":"getCandidatesLength","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256","internalType":"uint256"}]},{"type":"function","name":"getCandidateData","stateMutability":"view","inputs":[{"name":"_candidateAddress","type":"address","internalType":"address"}],"outputs":[{"name":"","type":"tuple","internalType":"struct VotingOrganization.Candidate","components":[{"name":"id","type":"uint256","internalType":"uint256"},{"name":"name","type":"string","internalType":"string"},{"name":"candidateAddress","type":"address","internalType":"address"},{"name":"age","type":"uint256","internalType":"uint256"},{"name":"image","type":"string","internalType":"string"},{"name":"ipfs","type":"string","internalType":"string"},{"name":"voteCount","type":"uint256","internalType":"uint256"},{"name":"exists","type":"bool","internalType":"bool"}]}]},{"type":"function","name":"getVotersLength","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256","internalType":"uint256"}]},{"type":"function","name":"getVoterData","stateMutability":"view","inputs":[{"name":"_voterAddress","type":"address","internalType":"address"}],"outputs":[{"name":"","type":"tuple","internalType":"struct VotingOrganization.Voter","components":[{"name":"id","type":"uint256","internalType":"uint256"},{"name":"name","type":"string","internalType":"string"},{"name":"voterAddress","type":"address","internalType":"address"},{"name":"age","type":"uint256","internalType":"uint256"},{"name":"image","type":"string","internalType":"string"},{"name":"ipfs","type":"string","internalType":"string"},{"name":"voteCount","type":"uint256","internalType":"uint256"},{"name":"exists","type":"bool","internalType":"bool"}]}]},{"type":"function","name":"voters","stateMutability":"view","inputs":[{"name":"","type":"address","internalType":"address"}],"outputs":[{"name":"id","type":"uint256","internalType":"uint256"},{"name":"name","type":"string","internalType":"string"},{"name":"voterAddress","type":"address","internalType":"address"},{"name":"age","type":"uint256","internalType":"uint256"},{"name":"image","type":"string","internalType":"string"},{"name":"ipfs","type":"string","internalType":"string"},{"name":"voteCount","type":"uint256","internalType":"uint256"},{"name":"exists","type":"bool","internalType":"bool"}]},{"type":"function","name":"candidates","stateMutability":"view","inputs":[{"name":"","type":"address","internalType":"address"}],"outputs":[{"name":"id","type":"uint256","internalType":"uint256"},{"name":"name","type":"string","internalType":"string"},{"name":"candidateAddress","type":"address","internalType":"address"},{"name":"age","type":"uint256","internalType":"uint256"},{"name":"image","type":"string","internalType":"string"},{"name":"ipfs","type":"string","internalType":"string"},{"name":"voteCount","type":"uint256","internalType":"uint256"},{"name":"exists","type":"bool","internalType":"bool"}]},{"type":"function","name":"votersToBeAllowed","stateMutability":"view","inputs":[{"name":"","type":"address","internalType":"address"}],"outputs":[{"name":"id","type":"uint256","internalType":"uint256"},{"name":"name","type":"string","internalType":"string"},{"name":"voterAddress","type":"address","internalType":"address"},{"name":"age","type":"uint256","internalType":"uint256"},{"name":"image","type":"string","internalType":"string"},{"name":"ipfs","type":"string","internalType":"string"},{"name":"voteCount","type":"uint256","internalType":"uint256"},{"name":"exists","type":"bool","internalType":"bool"}]},{"type":"function","name":"votersToBeAllowedList","stateMutability":"view","inputs":[{"name":"","type":"uint256","internalType":"uint256"}],"outputs":[{"name":"","type":"address","internalType":"address"}]},{"type":"function","name":"getVotersToBeAllowedListLength","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256","internalType":"uint256"}]},{"type":"function","name":"candidatesToBeAllowed","stateMutability":"view","inputs":[{"name":"","type":"address","internalType":"address"}],"outputs":[{"name":"id","type":"uint256","internalType":"uint256"},{"name":"name","type":"string","internalType":"string"},{"name":"candidateAddress","type":"address","internalType":"address"},{"name":"age","type":"uint256","internalType":"uint256"},{"name":"image","type":"string","internalType":"string"},{"name":"ipfs","type":"string","internalType":"string"},{"name":"voteCount","type":"uint256","internalType":"uint256"},{"name":"exists","type":"bool","internalType":"bool"}]},{"type":"function","name":"candidatesToBeAllowedList","stateMutability":"view","inputs":[{"name":"","type":"uint256","internalType":"uint256"}],"outputs":[{"name":"","type":"address","internalType":"address"}]},{"type":"function","name":"getCandidatesToBeAllowedListLength","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256","internalType":"uint256"}]},{"type":"function","name":"groupId","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256","internalType":"uint256"}]},{"type":"function","name":"groups","stateMutability":"view","inputs":[{"name":"","type":"uint256","internalType":"uint256"}],"outputs":[{"name":"id","type":"uint256","internalType":"uint256"},{"name":"name","type":"string","internalType":"string"},{"name":"image","type":"string","internalType":"string"},{"name":"ipfs","type":"string","internalType":"string"},{"name":"requiresRegisteredVoters","type":"bool","internalType":"bool"},{"name":"exists","type":"bool","internalType":"bool"},{"name":"startTime","type":"uint256","internalType":"uint256"},{"name":"endTime","type":"uint256","internalType":"uint256"},{"name":"description","type":"string","internalType":"string"}]}]`
