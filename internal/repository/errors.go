package repository

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type InvalidIDError struct{ Message string }

func (e *InvalidIDError) Error() string { return e.Message }

type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }
