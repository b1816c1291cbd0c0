package models

type CandidateStatus string

const (
	CandidateStatusActive    CandidateStatus = "active"
	CandidateStatusWithdrawn CandidateStatus = "withdrawn"
	CandidateStatusPlaced    CandidateStatus = "placed"
)

var candidateStatusHumanName = map[CandidateStatus]string{
	CandidateStatusActive:    "В процессе",
	CandidateStatusWithdrawn: "Выбыл",
	CandidateStatusPlaced:    "Принят",
}

func (s CandidateStatus) ToHuman() string {
	if human, exist := candidateStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s CandidateStatus) IsValid() bool {
	_, ok := candidateStatusHumanName[s]
	return ok
}
