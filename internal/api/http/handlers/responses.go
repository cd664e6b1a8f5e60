package handlers

import (
	"github.com/talentdesk/recruitment-service/internal/api/dto"
	"github.com/talentdesk/recruitment-service/internal/domain"
)

func staffResponse(staff *domain.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		ID:         staff.ID,
		FirstName:  staff.FirstName,
		LastName:   staff.LastName,
		Email:      staff.Email,
		Role:       staff.Role,
		Region:     staff.Region,
		Department: staff.Department,
		Position:   staff.Position,
		Active:     staff.Active,
	}
}

func candidateResponse(candidate *domain.Candidate) dto.CandidateResponse {
	return dto.CandidateResponse{
		ID:          candidate.ID,
		FirstName:   candidate.FirstName,
		LastName:    candidate.LastName,
		Email:       candidate.Email,
		Phone:       candidate.Phone,
		Location:    candidate.Location,
		Skills:      candidate.Skills,
		ResumeURL:   candidate.ResumeURL,
		CoverLetter: candidate.CoverLetter,
		Active:      candidate.Active,
	}
}

func companyResponse(company *domain.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:       company.ID,
		Name:     company.Name,
		Email:    company.Email,
		Industry: company.Industry,
		Location: company.Location,
		Website:  company.Website,
		Status:   company.Status,
	}
}

func jobResponse(job *domain.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:           job.ID,
		Title:        job.Title,
		CompanyID:    job.CompanyID,
		CompanyName:  job.CompanyName,
		Location:     job.Location,
		Type:         job.Type,
		Salary:       job.Salary,
		Description:  job.Description,
		Requirements: job.Requirements,
		Skills:       job.Skills,
		Status:       job.Status,
		Remote:       job.Remote,
	}
}

func applicationResponse(application *domain.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:          application.ID,
		JobID:       application.JobID,
		CandidateID: application.CandidateID,
		Status:      application.Status,
		Notes:       application.Notes,
		Location:    application.Location,
		AppliedAt:   application.AppliedAt,
	}
}

func skillResponse(skill *domain.Skill) dto.SkillResponse {
	return dto.SkillResponse{
		ID:       skill.ID,
		Name:     skill.Name,
		Category: skill.Category,
	}
}

func taskResponse(task *domain.CalendarTask) dto.CalendarTaskResponse {
	return dto.CalendarTaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		AssigneeID:  task.AssigneeID,
		Location:    task.Location,
		Status:      task.Status,
		DueAt:       task.DueAt,
	}
}

func projectResponse(project *domain.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CompanyID:   project.CompanyID,
		Location:    project.Location,
		Status:      project.Status,
	}
}
