package services

import (
	"sort"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/models"

	"gorm.io/gorm"
)

// StatsService assembles the dashboard views (leaderboard, progress matrix,
// team standings) in memory. Cohort scale is small, so load-then-aggregate
// beats maintaining database views.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	ParticipantID  uint   `json:"participant_id"`
	Name           string `json:"name"`
	GitHubUsername string `json:"github_username"`
	Role           string `json:"role"`
	Team           string `json:"team"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	Submissions    int    `json:"submissions"`
	BasePoints     int    `json:"base_points"`
	BonusPoints    int    `json:"bonus_points"`
	TotalPoints    int    `json:"total_points"`
}

func (s *StatsService) Leaderboard() ([]LeaderboardEntry, error) {
	participants, submissions, err := s.loadCohort()
	if err != nil {
		return nil, err
	}

	bonuses, err := s.bonusPoints()
	if err != nil {
		return nil, err
	}

	subCount := make(map[uint]int)
	basePoints := make(map[uint]int)
	for _, sub := range submissions {
		subCount[sub.ParticipantID]++
		basePoints[sub.ParticipantID] += sub.PointsEarned
	}

	entries := make([]LeaderboardEntry, 0, len(participants))
	for _, p := range participants {
		entries = append(entries, LeaderboardEntry{
			ParticipantID:  p.ID,
			Name:           p.Name,
			GitHubUsername: p.GitHubUsername,
			Role:           p.Role,
			Team:           p.Team,
			AvatarURL:      p.AvatarURL,
			Submissions:    subCount[p.ID],
			BasePoints:     basePoints[p.ID],
			BonusPoints:    bonuses[p.ID],
			TotalPoints:    basePoints[p.ID] + bonuses[p.ID],
		})
	}

	sort.Slice(entries, func(a, b int) bool {
		if entries[a].TotalPoints != entries[b].TotalPoints {
			return entries[a].TotalPoints > entries[b].TotalPoints
		}
		return entries[a].Name < entries[b].Name
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}

// MatrixKey identifies one progress matrix cell. A structured key instead
// of a "role-day-type" string rules out collisions between segments.
type MatrixKey struct {
	Role string
	Day  int
	Type string
}

type MatrixCell struct {
	Role          string `json:"role"`
	Day           int    `json:"day"`
	Type          string `json:"type"`
	Submitted     int    `json:"submitted"`
	Total         int    `json:"total"`
	CompletionPct int    `json:"completion_pct"`
}

// ProgressMatrix reports, for every (role, day, type) cell, how many of the
// role's participants submitted that assignment. Cells come out in role
// enumeration order, then by day, in-class before homework.
func (s *StatsService) ProgressMatrix() ([]MatrixCell, error) {
	participants, submissions, err := s.loadCohort()
	if err != nil {
		return nil, err
	}

	var assignments []models.Assignment
	if err := s.db.Find(&assignments).Error; err != nil {
		return nil, err
	}

	roleSize := make(map[string]int)
	participantRole := make(map[uint]string)
	for _, p := range participants {
		roleSize[p.Role]++
		participantRole[p.ID] = p.Role
	}

	assignmentKey := make(map[uint]MatrixKey)
	for _, a := range assignments {
		assignmentKey[a.ID] = MatrixKey{Day: a.Day, Type: a.Type}
	}

	submitted := make(map[MatrixKey]int)
	for _, sub := range submissions {
		key, ok := assignmentKey[sub.AssignmentID]
		if !ok {
			continue
		}
		key.Role = participantRole[sub.ParticipantID]
		submitted[key]++
	}

	cells := make([]MatrixCell, 0, len(models.Roles)*len(assignments))
	for _, role := range models.Roles {
		for _, a := range s.orderedAssignments(assignments) {
			key := MatrixKey{Role: role, Day: a.Day, Type: a.Type}
			total := roleSize[role]
			count := submitted[key]
			pct := 0
			if total > 0 {
				pct = count * 100 / total
			}
			cells = append(cells, MatrixCell{
				Role:          role,
				Day:           a.Day,
				Type:          a.Type,
				Submitted:     count,
				Total:         total,
				CompletionPct: pct,
			})
		}
	}

	return cells, nil
}

func (s *StatsService) orderedAssignments(assignments []models.Assignment) []models.Assignment {
	ordered := make([]models.Assignment, len(assignments))
	copy(ordered, assignments)
	sort.Slice(ordered, func(a, b int) bool {
		if ordered[a].Day != ordered[b].Day {
			return ordered[a].Day < ordered[b].Day
		}
		// In-class before homework within a day.
		return ordered[a].Type == models.AssignmentTypeInClass && ordered[b].Type != models.AssignmentTypeInClass
	})
	return ordered
}

type TeamStanding struct {
	Rank           int                  `json:"rank"`
	Team           string               `json:"team"`
	TotalPoints    int                  `json:"total_points"`
	AvgSubmissions float64              `json:"avg_submissions"`
	Members        []models.Participant `json:"members"`
}

func (s *StatsService) TeamStandings() ([]TeamStanding, error) {
	participants, submissions, err := s.loadCohort()
	if err != nil {
		return nil, err
	}

	bonuses, err := s.bonusPoints()
	if err != nil {
		return nil, err
	}

	points := make(map[uint]int)
	subCount := make(map[uint]int)
	for _, sub := range submissions {
		points[sub.ParticipantID] += sub.PointsEarned
		subCount[sub.ParticipantID]++
	}

	byTeam := make(map[string]*TeamStanding)
	for _, team := range models.Teams {
		byTeam[team] = &TeamStanding{Team: team}
	}
	totalSubs := make(map[string]int)

	for _, p := range participants {
		standing, ok := byTeam[p.Team]
		if !ok {
			continue
		}
		standing.Members = append(standing.Members, p)
		standing.TotalPoints += points[p.ID] + bonuses[p.ID]
		totalSubs[p.Team] += subCount[p.ID]
	}

	standings := make([]TeamStanding, 0, len(models.Teams))
	for _, team := range models.Teams {
		standing := byTeam[team]
		if len(standing.Members) > 0 {
			standing.AvgSubmissions = float64(totalSubs[team]) / float64(len(standing.Members))
		}
		standings = append(standings, *standing)
	}

	sort.Slice(standings, func(a, b int) bool {
		if standings[a].TotalPoints != standings[b].TotalPoints {
			return standings[a].TotalPoints > standings[b].TotalPoints
		}
		return standings[a].Team < standings[b].Team
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}

	return standings, nil
}

type DashboardStats struct {
	Participants   int64 `json:"participants"`
	Submissions    int64 `json:"submissions"`
	Assignments    int64 `json:"assignments"`
	CompletionRate int   `json:"completion_rate"`
}

func (s *StatsService) Dashboard() (*DashboardStats, error) {
	var stats DashboardStats
	if err := s.db.Model(&models.Participant{}).Count(&stats.Participants).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Submission{}).Count(&stats.Submissions).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Assignment{}).Count(&stats.Assignments).Error; err != nil {
		return nil, err
	}

	totalPossible := stats.Participants * stats.Assignments
	if totalPossible > 0 {
		stats.CompletionRate = int(stats.Submissions * 100 / totalPossible)
	}

	return &stats, nil
}

func (s *StatsService) loadCohort() ([]models.Participant, []models.Submission, error) {
	var participants []models.Participant
	if err := s.db.Find(&participants).Error; err != nil {
		return nil, nil, err
	}

	var submissions []models.Submission
	if err := s.db.Find(&submissions).Error; err != nil {
		return nil, nil, err
	}

	return participants, submissions, nil
}

// bonusPoints sums achievement bonuses per participant.
func (s *StatsService) bonusPoints() (map[uint]int, error) {
	var earned []models.ParticipantAchievement
	if err := s.db.Preload("Achievement").Find(&earned).Error; err != nil {
		return nil, err
	}

	bonuses := make(map[uint]int)
	for _, pa := range earned {
		bonuses[pa.ParticipantID] += pa.Achievement.PointsBonus
	}
	return bonuses, nil
}
