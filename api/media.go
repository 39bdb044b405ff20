package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"

	"ripple-cli/types"

	shared "ripple-shared"
)

func (a *Api) UploadMedia(blogId int64, files []types.MediaUpload) ([]*shared.Media, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/media/upload/%d", GetApiHost(), blogId)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for _, file := range files {
		part, err := writer.CreateFormFile("files", file.Name)
		if err != nil {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating form file: %v", err)}
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error writing form file: %v", err)}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error finalizing form: %v", err)}
	}

	resp, err := authenticatedUploadClient.Post(serverUrl, writer.FormDataContentType(), &body)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var media []*shared.Media
	err = json.NewDecoder(resp.Body).Decode(&media)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return media, nil
}

func (a *Api) ListMediaByBlog(blogId int64) ([]*shared.Media, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/media/by-blog/%d", GetApiHost(), blogId)

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var media []*shared.Media
	err = json.NewDecoder(resp.Body).Decode(&media)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return media, nil
}
