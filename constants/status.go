package constants

// ScanStage is the canonical state of a scan session.
type ScanStage string

// Stable values (persisted in the session store).
const (
	StageIdle              ScanStage = "IDLE"
	StageUploading         ScanStage = "UPLOADING"
	StageOCRRunning        ScanStage = "OCR_RUNNING"
	StageStructuring       ScanStage = "STRUCTURING"
	StageSummaryExtracting ScanStage = "SUMMARY_EXTRACTING"
	StageSavingPhoto       ScanStage = "SAVING_PHOTO"
	StageCategorizing      ScanStage = "CATEGORIZING"
	StageReviewReady       ScanStage = "REVIEW_READY" // drafts ready for commit/skip
	StageNoItems           ScanStage = "NO_ITEMS"     // terminal: nothing detected, not a failure
	StageCommitting        ScanStage = "COMMITTING"
	StageFailed            ScanStage = "FAILED" // terminal failure
)

// Terminal reports whether the stage ends the active pipeline run.
func (s ScanStage) Terminal() bool {
	switch s {
	case StageReviewReady, StageNoItems, StageFailed, StageIdle:
		return true
	}
	return false
}
