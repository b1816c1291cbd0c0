package pipeline

import "time"

// Snapshot - порядок отображения кандидатов по этапам каждой заявки. В БД порядок не хранится,
// снимок сохраняется и восстанавливается только явным вызовом.
type Snapshot struct {
	TakenAt time.Time                      `json:"taken_at"`
	Boards  map[string]map[string][]string `json:"boards"` // requisitionID -> phaseID -> candidateID
}

func (i *impl) Snapshot() Snapshot {
	i.mu.Lock()
	defer i.mu.Unlock()
	boards := make(map[string]map[string][]string, len(i.boards))
	for requisitionID, board := range i.boards {
		order := make(map[string][]string, len(board))
		for phaseID, list := range board {
			if len(list) == 0 {
				continue
			}
			order[phaseID] = append([]string(nil), list...)
		}
		if len(order) == 0 {
			continue
		}
		boards[requisitionID] = order
	}
	return Snapshot{
		TakenAt: i.now(),
		Boards:  boards,
	}
}

// Restore применяет сохраненный порядок только к кандидатам, которые остались на том же этапе
// той же заявки. Остальные кандидаты этапа идут следом в текущем порядке.
func (i *impl) Restore(snapshot Snapshot) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for requisitionID, saved := range snapshot.Boards {
		board, ok := i.boards[requisitionID]
		if !ok {
			continue
		}
		for phaseID, savedOrder := range saved {
			current := board[phaseID]
			if len(current) == 0 {
				continue
			}
			board[phaseID] = restoreOrder(current, savedOrder)
		}
	}
}

func restoreOrder(current, saved []string) []string {
	inPhase := make(map[string]bool, len(current))
	for _, id := range current {
		inPhase[id] = true
	}
	restored := make([]string, 0, len(current))
	used := make(map[string]bool, len(current))
	for _, id := range saved {
		if !inPhase[id] || used[id] {
			continue
		}
		restored = append(restored, id)
		used[id] = true
	}
	for _, id := range current {
		if !used[id] {
			restored = append(restored, id)
		}
	}
	return restored
}
