package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"resumematch/internal/models"
)

func TestCreateAndGetResume(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	resume := &models.Resume{
		Filename:      "abc123_resume.pdf",
		OriginalName:  "resume.pdf",
		ExtractedText: "golang kubernetes grpc",
		CandidateName: "Jane Doe",
	}
	if err := db.CreateResume(ctx, resume); err != nil {
		t.Fatalf("CreateResume() error = %v", err)
	}
	if resume.ID == uuid.Nil {
		t.Fatal("CreateResume() did not populate ID")
	}

	got, err := db.GetResumeByID(ctx, resume.ID)
	if err != nil {
		t.Fatalf("GetResumeByID() error = %v", err)
	}
	if got.OriginalName != "resume.pdf" || got.ExtractedText != "golang kubernetes grpc" {
		t.Errorf("GetResumeByID() = %+v, fields do not match insert", got)
	}

	got, err = db.GetResumeByFilename(ctx, "abc123_resume.pdf")
	if err != nil {
		t.Fatalf("GetResumeByFilename() error = %v", err)
	}
	if got.ID != resume.ID {
		t.Errorf("GetResumeByFilename() ID = %v, want %v", got.ID, resume.ID)
	}
}

func TestGetResumeNotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := db.GetResumeByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrResumeNotFound) {
		t.Errorf("GetResumeByID() error = %v, want ErrResumeNotFound", err)
	}

	_, err = db.GetResumeByFilename(context.Background(), "nope.pdf")
	if !errors.Is(err, ErrResumeNotFound) {
		t.Errorf("GetResumeByFilename() error = %v, want ErrResumeNotFound", err)
	}
}

func TestListResumesNewestFirst(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	for _, name := range []string{"first.pdf", "second.pdf"} {
		resume := &models.Resume{Filename: "stored_" + name, OriginalName: name}
		if err := db.CreateResume(ctx, resume); err != nil {
			t.Fatalf("CreateResume(%s) error = %v", name, err)
		}
	}

	resumes, err := db.ListResumes(ctx)
	if err != nil {
		t.Fatalf("ListResumes() error = %v", err)
	}
	if len(resumes) != 2 {
		t.Fatalf("ListResumes() returned %d resumes, want 2", len(resumes))
	}

	count, err := db.CountResumes(ctx)
	if err != nil {
		t.Fatalf("CountResumes() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountResumes() = %d, want 2", count)
	}
}
